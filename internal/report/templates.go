package report

import "text/template"

//nolint: gochecknoglobals
var trendTemplate = template.Must(template.New("trend").Parse(`# Trend Report

Generated at {{ .GeneratedAt.Format "2006-01-02 15:04:05 UTC" }}.

{{ if not .Trends }}No trends available yet.
{{ else }}| Signal | Phase | Strength | Confidence | Growth % | Spikes |
|--------|-------|----------|------------|----------|--------|
{{ range .Trends }}| {{ .Signal }} | {{ .Phase }} | {{ printf "%.1f" .Strength }} | {{ printf "%.1f" .Confidence }} | {{ printf "%.1f" .GrowthRate }} | {{ .Spikes }} |
{{ end }}{{ end }}`))

//nolint: gochecknoglobals
var inventoryTemplate = template.Must(template.New("inventory").Parse(`# Inventory Report

Generated at {{ .GeneratedAt.Format "2006-01-02 15:04:05 UTC" }}.

## Low Stock

{{ if not .LowStock }}No items at or below their reorder point.
{{ else }}| SKU | Name | Category | Stock | Reorder Point | Supplier |
|-----|------|----------|-------|---------------|----------|
{{ range .LowStock }}| {{ .Code }} | {{ .Name }} | {{ .Category }} | {{ .Stock }} | {{ .ReorderPoint }} | {{ .Supplier }} |
{{ end }}{{ end }}
## Sales by Category

{{ if not .Categories }}No sales recorded in the reporting window.
{{ else }}| Category | Units | Revenue |
|----------|-------|---------|
{{ range .Categories }}| {{ .Category }} | {{ .Units }} | {{ printf "%.2f" .Revenue }} |
{{ end }}{{ end }}`))
