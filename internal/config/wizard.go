package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .studio.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to studio! Let's connect to your content platform.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Upstream URL.
	upstreamPrompt := promptui.Prompt{
		Label:    "Content platform URL",
		Default:  cfg.UpstreamURL,
		Validate: validateURL,
	}
	upstream, err := upstreamPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("upstream url: %w", err)
	}
	cfg.UpstreamURL = strings.TrimRight(upstream, "/")

	// 2. Local port.
	portPrompt := promptui.Prompt{
		Label:    "Port for the local console",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Prompt count.
	countPrompt := promptui.Select{
		Label: "Prompt suggestions per request",
		Items: []string{"3", "5", "10"},
	}
	_, countStr, err := countPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt count: %w", err)
	}
	cfg.Prompts.Count, _ = strconv.Atoi(countStr)

	// 4. Session cookie.
	cookiePrompt := promptui.Prompt{
		Label:   "Session cookie for the platform (leave blank if none)",
		Default: "",
	}
	cookie, err := cookiePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("session cookie: %w", err)
	}
	if cookie = strings.TrimSpace(cookie); cookie != "" {
		cfg.Headers = map[string]string{"Cookie": cookie}
	}

	// Save to .studio.yml.
	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigFile)
	return cfg, nil
}

func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("enter an http or https URL")
	}
	return nil
}

func validatePort(s string) error {
	p, err := strconv.Atoi(s)
	if err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("enter a port between 1 and 65535")
	}
	return nil
}
