package composer

const pageTemplate = `{{define "content"}}
<div class="row">
  <div class="col-lg-8">
    <h1 class="h3 mb-3">Create Content</h1>
    {{if .Alert}}<div class="alert alert-warning" role="alert">{{.Alert}}</div>{{end}}
    <form id="create-form" action="/create" method="post" enctype="multipart/form-data" novalidate
      class="needs-validation{{if .WasValidated}} was-validated{{end}}">
      <input type="hidden" name="content_type" id="content_type" value="{{.State.Format}}">
      <div class="row g-2 mb-3">
        {{range .Cards}}
        <div class="col-6 col-md-3">
          <button type="submit" name="action" value="format:{{.Format}}"
            class="card format-card w-100 p-3{{if .Selected}} selected{{end}}" data-type="{{.Format}}">{{.Label}}</button>
        </div>
        {{end}}
      </div>

      <div class="mb-3">
        <label for="title" class="form-label">Title</label>
        <div class="input-group">
          <input type="text" class="form-control{{if index .FieldErrors "title"}} is-invalid{{end}}" id="title" name="title"
            value="{{.State.Title}}" required maxlength="200">
          <button type="submit" name="action" value="prompts" id="generate-prompts" class="btn btn-outline-secondary"
            data-busy-label="{{.BusyLabel}}"{{if .PromptDisabled}} disabled{{end}}>
            {{if .PromptDisabled}}<i class="fas fa-spinner fa-spin"></i> {{end}}{{.PromptLabel}}
          </button>
        </div>
        {{with index .FieldErrors "title"}}<div class="invalid-feedback d-block">{{.}}</div>{{end}}
      </div>

      {{if .State.Suggestions}}
      <div class="mb-3" id="prompt-suggestions">
        {{range .State.Suggestions}}<input type="hidden" name="suggestion" value="{{.}}">{{end}}
        <div class="input-group">
          <select class="form-select" id="prompt-select" name="prompt">
            <option value="">Select a prompt...</option>
            {{range .State.Suggestions}}<option value="{{.}}">{{.}}</option>{{end}}
          </select>
          <button type="submit" name="action" value="pick" class="btn btn-outline-primary">Use prompt</button>
        </div>
      </div>
      {{end}}

      <div class="mb-3" id="text-input-section"{{if not .Sections.Text}} style="display: none;"{{end}}>
        <label for="input_text" class="form-label">Text</label>
        <textarea class="form-control" id="input_text" name="input_text" rows="5">{{.State.Text}}</textarea>
      </div>

      <div class="mb-3" id="audio-input-section"{{if not .Sections.Audio}} style="display: none;"{{end}}>
        <label for="audio_file" class="form-label">Audio</label>
        <input type="file" class="form-control" id="audio_file" name="audio_file" accept="audio/*">
        <p class="text-muted mt-2" id="audio-label"></p>
        {{with .AudioDropped}}<p class="text-warning mt-2" id="audio-dropped">{{.}} was not kept. Attach it again.</p>{{end}}
      </div>

      <button type="submit" name="action" value="submit" class="btn btn-primary">
        <i class="fas fa-magic"></i> Create
      </button>
    </form>
  </div>
  <div class="col-lg-4">
    <div class="card" id="preview-area">
      <div class="card-body text-center text-muted py-5">
        <i class="fas {{.Preview.Icon}} fa-3x mb-3"></i>
        <p class="mb-0">{{.Preview.Text}}</p>
      </div>
    </div>
    {{if .Calendar}}
    <div class="card mt-3" id="content-calendar">
      <div class="card-header"><i class="fas fa-calendar-alt"></i> Content calendar</div>
      <ul class="list-group list-group-flush">
        {{range .Calendar}}
        <li class="list-group-item">
          <div class="small text-muted">{{.Date}} · {{.Label}}</div>
          <div>{{.Suggestion}}</div>
          {{if .Format.Valid}}<button type="submit" form="create-form" name="action" value="format:{{.Format}}" class="btn btn-sm btn-link px-0">Use {{.Label}}</button>{{end}}
        </li>
        {{end}}
      </ul>
    </div>
    {{end}}
  </div>
</div>
<script>
(function () {
  var form = document.getElementById("create-form");
  var prompts = document.getElementById("generate-prompts");
  var audio = document.getElementById("audio_file");
  form.addEventListener("submit", function (e) {
    if (e.submitter !== prompts) return;
    // A button disabled during the submit event drops out of the form data.
    setTimeout(function () {
      prompts.disabled = true;
      prompts.textContent = prompts.dataset.busyLabel;
    }, 0);
  });
  audio.addEventListener("change", function () {
    document.getElementById("audio-label").textContent = audio.files.length ? "Selected file: " + audio.files[0].name : "";
    var dropped = document.getElementById("audio-dropped");
    if (dropped) dropped.remove();
  });
})();
</script>
{{end}}`
