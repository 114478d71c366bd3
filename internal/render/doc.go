// Package render turns compiled pages and blog listings into finished HTML
// documents.
//
// Two strategies exist. MarkerRenderer splices content between the
// <!-- start_content --> and <!-- end_content --> markers of a template and
// substitutes $PAGE['field'] placeholders. EngineRenderer evaluates
// Django/Jinja style templates with pongo2 and falls back to marker
// rendering for templates that were not loaded from a .jinja file.
package render
