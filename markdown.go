package main

import (
	"github.com/russross/blackfriday/v2"
)

var htmlFlags blackfriday.HTMLFlags
var extensions blackfriday.Extensions

func init() {
	htmlFlags |= blackfriday.UseXHTML
	htmlFlags |= blackfriday.Smartypants
	htmlFlags |= blackfriday.SmartypantsFractions
	htmlFlags |= blackfriday.SmartypantsLatexDashes

	extensions |= blackfriday.NoIntraEmphasis
	extensions |= blackfriday.Tables
	extensions |= blackfriday.FencedCode
	extensions |= blackfriday.Autolink
	extensions |= blackfriday.Strikethrough
}

func newMarkdownRenderer() renderer {
	r := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{Flags: htmlFlags})
	return &blackfridayHTMLRenderer{r}
}

type blackfridayHTMLRenderer struct {
	r blackfriday.Renderer
}

func (b *blackfridayHTMLRenderer) render(in []byte) string {
	return string(blackfriday.Run(in, blackfriday.WithRenderer(b.r), blackfriday.WithExtensions(extensions)))
}
