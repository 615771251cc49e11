// Package markdown splits post sources into front matter and body and
// performs the text transformations Post construction needs: first-paragraph
// extraction and markdown link stripping.
package markdown
