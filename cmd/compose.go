package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/content-studio/internal/apiclient"
	"github.com/ziadkadry99/content-studio/internal/composer"
	"github.com/ziadkadry99/content-studio/internal/content"
	"github.com/ziadkadry99/content-studio/internal/progress"
	"github.com/ziadkadry99/content-studio/internal/ui"
)

var (
	composeFormat   string
	composeTitle    string
	composeText     string
	composeAudio    string
	composeTheme    string
	composeGenerate bool
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Create a piece of content from the terminal",
	Long: `Walks through the create form: pick a format, give it a title, write the
text or take a generated prompt, attach audio for voice and avatar videos,
then submit it to the platform. Values given as flags are not asked for.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := newClientFromConfig(cfg)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		var st composer.State
		format := content.Format(composeFormat)
		if format == content.FormatNone {
			if format, err = selectFormat(); err != nil {
				return err
			}
		}
		if st, err = st.SelectFormat(format); err != nil {
			return err
		}

		st.Title = composeTitle
		if st.Title == "" {
			if st.Title, err = (&promptui.Prompt{Label: "Title"}).Run(); err != nil {
				return fmt.Errorf("title: %w", err)
			}
		}

		st.Text = composeText
		if composeGenerate {
			trigger := composer.NewPromptTrigger(client, cfg.Prompts.Count, cfg.Prompts.DefaultTheme)
			if st, err = pickPrompt(ctx, trigger, st); err != nil {
				return err
			}
		}
		if st.Text == "" && composeAudio == "" {
			if st.Text, err = (&promptui.Prompt{Label: "Text (leave blank to attach audio)"}).Run(); err != nil {
				return fmt.Errorf("text: %w", err)
			}
		}

		audioPath := composeAudio
		if audioPath == "" && st.Text == "" && composer.Sections(st.Format).Audio {
			if audioPath, err = (&promptui.Prompt{Label: "Audio file path"}).Run(); err != nil {
				return fmt.Errorf("audio: %w", err)
			}
		}
		if audioPath != "" {
			st = st.AttachAudio(audioPath)
			if verbose {
				fmt.Fprintln(os.Stderr, st.AudioLabel)
			}
		}

		var verr *composer.ValidationError
		if err := composer.Validate(composer.Submission{
			Format: st.Format, Title: st.Title, Text: st.Text, HasAudio: audioPath != "",
		}); errors.As(err, &verr) {
			return errors.New(verr.Message())
		}

		sub := apiclient.Submission{Format: st.Format, Title: strings.TrimSpace(st.Title), InputText: st.Text}
		if audioPath != "" && st.Format.AcceptsAudio() {
			f, err := os.Open(audioPath)
			if err != nil {
				return fmt.Errorf("opening audio: %w", err)
			}
			defer f.Close()
			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("reading audio: %w", err)
			}
			if err := audioPolicyFromConfig(cfg).Accepts(audioPath, info.Size()); err != nil {
				return err
			}
			sub.AudioName = ui.FileLabel(audioPath, "audio")
			sub.Audio = f
		}

		err = progress.Run(progress.NewIndicator(), "Submitting "+st.Format.Label(), func() error {
			return client.SubmitContent(ctx, sub)
		})
		if err != nil {
			return fmt.Errorf("creating content: %w", err)
		}
		fmt.Println("Content created successfully!")
		return nil
	},
}

func selectFormat() (content.Format, error) {
	formats := content.Formats()
	labels := make([]string, len(formats))
	for i, f := range formats {
		labels[i] = f.Label()
	}
	idx, _, err := (&promptui.Select{Label: "Content type", Items: labels}).Run()
	if err != nil {
		return content.FormatNone, fmt.Errorf("content type: %w", err)
	}
	return formats[idx], nil
}

// pickPrompt asks the platform for suggestions and lets the user adopt one.
func pickPrompt(ctx context.Context, trigger *composer.PromptTrigger, st composer.State) (composer.State, error) {
	theme := composeTheme
	if theme == "" {
		theme = st.Title
	}

	var prompts []string
	err := progress.Run(progress.NewIndicator(), composer.BusyLabel, func() error {
		var err error
		prompts, err = trigger.Request(ctx, theme)
		return err
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, composer.PromptFailureMessage)
		return st, nil
	}
	st = st.WithSuggestions(prompts)
	if len(st.Suggestions) == 0 {
		return st, nil
	}

	items := append([]string{"Write my own"}, st.Suggestions...)
	idx, choice, err := (&promptui.Select{Label: "Select a prompt", Items: items}).Run()
	if err != nil {
		return st, fmt.Errorf("prompt selection: %w", err)
	}
	if idx > 0 {
		st = st.PickSuggestion(choice)
	}
	return st, nil
}

func init() {
	composeCmd.Flags().StringVar(&composeFormat, "format", "", "content type (photo_quote, video_reel, voice_video, avatar_video)")
	composeCmd.Flags().StringVar(&composeTitle, "title", "", "content title")
	composeCmd.Flags().StringVar(&composeText, "text", "", "content text")
	composeCmd.Flags().StringVar(&composeAudio, "audio", "", "audio file for voice and avatar videos")
	composeCmd.Flags().StringVar(&composeTheme, "theme", "", "theme for generated prompts (defaults to the title)")
	composeCmd.Flags().BoolVar(&composeGenerate, "generate", false, "generate prompt suggestions before writing")
	rootCmd.AddCommand(composeCmd)
}
