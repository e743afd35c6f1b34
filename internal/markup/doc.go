// Package markup renders episode description markup to HTML.
//
// Descriptions in podcast feeds are treated as Markdown with autolinking:
// bare URLs and e-mail addresses are converted to anchor tags, matching
// what podcast directories do with feed descriptions.
//
//	r := markup.NewRenderer()
//	html, err := r.Render(item.Description)
package markup
