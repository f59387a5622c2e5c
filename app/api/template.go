package api

import "html/template"

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>News Data Dashboard</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 0; background: #ffffff; color: #262730; }
.layout { display: flex; min-height: 100vh; }
.sidebar { width: 260px; background: #f0f2f6; padding: 24px; }
.sidebar h2 { font-size: 16px; margin-top: 0; }
.sidebar label { display: block; margin: 10px 0 4px; font-size: 13px; font-weight: 600; }
.sidebar select { width: 100%; padding: 6px; }
.sidebar .source-option { font-weight: normal; margin: 4px 0; }
.sidebar button { margin-top: 16px; padding: 8px 16px; border: none; border-radius: 6px; background: #1f77b4; color: white; cursor: pointer; }
.content { flex: 1; padding: 32px; }
.metrics { display: flex; gap: 24px; margin: 24px 0; }
.metric { background: #f0f2f6; padding: 16px 24px; border-radius: 10px; }
.metric .value { font-size: 28px; font-weight: 700; }
.metric .label { font-size: 13px; color: #555; }
.news-card { background: #f0f2f6; padding: 20px; border-radius: 10px; margin: 10px 0; border-left: 4px solid #1f77b4; }
.news-card h3 { margin: 0 0 8px; }
.news-card h3 a { color: #1f77b4; text-decoration: none; }
.source-badge { display: inline-block; padding: 5px 10px; border-radius: 20px; font-size: 12px; font-weight: bold; margin: 5px 5px 5px 0; }
.hn-badge { background-color: #ff6600; color: white; }
.tech-badge { background-color: #0084ff; color: white; }
.meta { font-size: 13px; color: #555; }
.warning { background: #fff3cd; border: 1px solid #ffe69c; padding: 16px; border-radius: 8px; }
.footer { text-align: center; color: gray; font-size: 12px; margin-top: 48px; }
</style>
</head>
<body>
<div class="layout">
<div class="sidebar">
<h2>Filters</h2>
<form method="get" action="/">
<label for="date">Filter by Date</label>
<select name="date" id="date">
<option value="">All dates</option>
{{range .Dates}}<option value="{{.}}"{{if eq . $.Query.Date}} selected{{end}}>{{.}}</option>
{{end}}</select>
<label>Filter by Source</label>
{{range .Sources}}<label class="source-option"><input type="checkbox" name="source" value="{{.}}"> {{.}}</label>
{{end}}<label for="sort">Sort by</label>
<select name="sort" id="sort">
<option value="score_desc"{{if eq .Query.Sort "score_desc"}} selected{{end}}>Score (High to Low)</option>
<option value="score_asc"{{if eq .Query.Sort "score_asc"}} selected{{end}}>Score (Low to High)</option>
<option value="date_desc"{{if eq .Query.Sort "date_desc"}} selected{{end}}>Date (Newest)</option>
<option value="date_asc"{{if eq .Query.Sort "date_asc"}} selected{{end}}>Date (Oldest)</option>
</select>
<button type="submit">Apply</button>
</form>
</div>
<div class="content">
<h1>News Data Dashboard</h1>
{{if .Warning}}
<div class="warning">{{.Warning}}</div>
{{else}}
<div class="metrics">
<div class="metric"><div class="value">{{.Stats.TotalStories}}</div><div class="label">Total Stories</div></div>
<div class="metric"><div class="value">{{.Stats.AverageScore}}</div><div class="label">Avg Score</div></div>
<div class="metric"><div class="value">{{.Stats.SourceCount}}</div><div class="label">Sources</div></div>
</div>
<h2>Stories</h2>
{{if .Stories}}
{{range .Stories}}
<div class="news-card">
<h3>{{if .URL}}<a href="{{.URL}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}</h3>
<span class="source-badge {{.BadgeClass}}">{{.Source}}</span>
<div class="meta">{{.Date}} &middot; Score: {{.Score}}</div>
</div>
{{end}}
{{else}}
<p>No stories found with selected filters.</p>
{{end}}
{{end}}
<div class="footer">News Data Collector</div>
</div>
</div>
</body>
</html>
`))
