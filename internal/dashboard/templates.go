package dashboard

const gridTemplate = `{{define "content"}}
<div class="d-flex justify-content-between align-items-center mb-3">
  <h1 class="h3 mb-0">Dashboard</h1>
  <div class="dropdown">
    <button class="btn btn-outline-secondary dropdown-toggle" type="button" data-bs-toggle="dropdown">Export</button>
    <ul class="dropdown-menu">
      <li><a class="dropdown-item" href="/dashboard/export">All content</a></li>
      <li><a class="dropdown-item" href="/dashboard/export?visible=1">Shown content</a></li>
    </ul>
  </div>
</div>
{{if .Alert}}<div class="alert alert-warning">{{.Alert}}</div>{{end}}

<div class="row g-3 mb-4" id="stats">
  <div class="col"><div class="card"><div class="card-body"><div class="text-muted">Total</div><div class="h4" id="total-content">{{.Stats.Total}}</div></div></div></div>
  <div class="col"><div class="card"><div class="card-body"><div class="text-muted">Photo quotes</div><div class="h4" id="photo-quotes">{{.Stats.PhotoQuotes}}</div></div></div></div>
  <div class="col"><div class="card"><div class="card-body"><div class="text-muted">Videos</div><div class="h4" id="videos">{{.Stats.Videos}}</div></div></div></div>
</div>

{{if .Stats.Empty}}
<div class="text-center text-muted py-5" id="empty-state">
  <i class="fas fa-folder-open fa-3x mb-3"></i>
  <p>No content yet. <a href="/create">Create your first piece</a>.</p>
</div>
{{else}}
<div class="d-flex flex-wrap gap-2 mb-3">
  <form method="post" action="/dashboard/search" class="d-flex gap-2">
    <input type="search" class="form-control" name="q" id="search" value="{{.Search}}" placeholder="Search content">
    <button type="submit" class="btn btn-outline-primary"><i class="fas fa-search"></i></button>
  </form>
  <form method="post" action="/dashboard/filter" class="btn-group">
    {{range .Filters}}<button type="submit" name="type" value="{{.Value}}" class="btn btn-outline-secondary{{if .Active}} active{{end}}">{{.Label}}</button>{{end}}
  </form>
</div>
<div class="row g-3" id="content-grid">
  {{range .Cards}}
  <div class="col-md-4">
    <div class="card content-card h-100" data-content-id="{{.ID}}" data-type="{{.Type}}" data-created="{{.Created}}">
      <div class="card-body">
        <h5 class="card-title"><a href="{{.DetailURL}}" class="stretched-link text-decoration-none">{{.Title}}</a></h5>
        <p class="card-text text-muted">{{.Label}} · {{.Created}}</p>
      </div>
      <div class="card-footer d-flex gap-2 position-relative" style="z-index: 2;">
        <form method="post" action="/content/{{.ID}}/copy"><button type="submit" class="btn btn-sm btn-outline-secondary">{{.CopyLabel}}</button></form>
        <div class="dropdown">
          <button class="btn btn-sm btn-outline-primary dropdown-toggle" type="button" data-bs-toggle="dropdown">Remix to…</button>
          <form method="post" action="/content/{{.ID}}/remix" class="dropdown-menu">
            {{range remixTargets .Type}}<button type="submit" name="target_format" value="{{.}}" class="dropdown-item">{{.Label}}</button>{{end}}
          </form>
        </div>
        <a href="/content/{{.ID}}/delete" class="btn btn-sm btn-outline-danger"><i class="fas fa-trash"></i> Delete</a>
      </div>
    </div>
  </div>
  {{else}}
  <p class="text-muted">No content matches.</p>
  {{end}}
</div>
{{end}}
{{end}}`

const confirmTemplate = `{{define "content"}}
<div class="card">
  <div class="card-body">
    <h1 class="h4">Delete content</h1>
    <p>Are you sure you want to delete <strong>{{.Item.Title}}</strong>?</p>
    <form method="post" action="/content/{{.Item.ID}}/delete" class="d-flex gap-2">
      <input type="hidden" name="confirm" value="yes">
      <button type="submit" class="btn btn-danger">Delete</button>
      <a href="/dashboard" class="btn btn-secondary">Cancel</a>
    </form>
  </div>
</div>
{{end}}`
