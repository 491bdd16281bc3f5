package server

import (
	"html/template"
	"net/http"
)

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>frameview</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
.status { margin: 1em 0; padding: .5em 1em; border-left: 4px solid #8a9bb0; }
.status.error { border-color: #e4572e; color: #e4572e; }
iframe { border: 1px solid #ddd; width: 100%; height: 760px; }
</style>
</head>
<body>
<h1>frameview</h1>
<form action="/api/upload" method="post" enctype="multipart/form-data">
  <input type="file" name="file" accept=".xlsx,.json">
  <button type="submit">Upload</button>
</form>
<div class="status{{if .Error}} error{{end}}">{{.Message}}{{if .Source}} ({{.Source}}){{end}}</div>
{{if .Loaded}}
<p>{{.Members}} members, {{.Nodes}} nodes{{if .Skipped}}, {{.Skipped}} skipped{{end}}.
<a href="/api/scene">scene.json</a> · <a href="/api/topology.svg">topology.svg</a></p>
<iframe src="/view"></iframe>
{{end}}
</body>
</html>
`))

type indexData struct {
	Message string
	Source  string
	Error   bool
	Loaded  bool
	Members int
	Nodes   int
	Skipped int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	st := s.store.Current()
	data := indexData{
		Message: st.Message,
		Source:  st.Source,
		Error:   st.Err != nil,
		Loaded:  !st.IsEmpty(),
		Members: st.Frame.MemberCount(),
		Nodes:   st.Frame.NodeCount(),
		Skipped: len(st.Scene.Skipped),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("render index", "err", err)
	}
}
