//-----------------------------------------------------------------------------
// Copyright (c) 2024-present the Fungrim authors
//
// This file is part of Fungrim.
//
// Fungrim is licensed under the MIT license. Please see file LICENSE.txt for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

package encoder

// htmlenc encodes terms and entries into HTML5 via sx object lists.
// Mathematical content goes through the typesetting function; scalar
// values inside tables and descriptions render as plain HTML to keep
// large tables cheap.

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"t73f.de/r/sx"
	"t73f.de/r/sxwebs/sxhtml"
	"t73f.de/r/zsc/shtml"

	"github.com/mhogrefe/fungrim/internal/expr"
	"github.com/mhogrefe/fungrim/internal/symtab"
)

// HTMLEncoder contains all data needed for encoding.
type HTMLEncoder struct {
	tex       *TeXEncoder
	tab       *symtab.Table
	typeset   TypesetFunc
	entryDir  string
	symbolDir string
	imgDir    string
}

// NewHTML creates an HTML encoder from the given options.
func NewHTML(params *CreateParameter) *HTMLEncoder {
	enc := &HTMLEncoder{
		tex:       NewTeX(params.Table),
		tab:       params.Table,
		typeset:   params.Typeset,
		entryDir:  params.EntryDir,
		symbolDir: params.SymbolDir,
		imgDir:    params.ImgDir,
	}
	if enc.typeset == nil {
		enc.typeset = ClientSideTypeset
	}
	if enc.entryDir == "" {
		enc.entryDir = "../../entry/"
	}
	if enc.symbolDir == "" {
		enc.symbolDir = "../../symbol/"
	}
	if enc.imgDir == "" {
		enc.imgDir = "../../img/"
	}
	return enc
}

// ClientSideTypeset defers math layout to the browser by emitting the
// LaTeX source inside standard math delimiters.
func ClientSideTypeset(tex string, display bool) string {
	if display {
		return `\[` + tex + `\]`
	}
	return `\(` + tex + `\)`
}

// WriteExpr encodes a single term as HTML.
func (he *HTMLEncoder) WriteExpr(w io.Writer, e *expr.Expr) error {
	gen := sxhtml.NewGenerator()
	_, err := gen.WriteHTML(w, he.html(e, false, false))
	return err
}

// WriteEntry encodes a whole entry as HTML.
func (he *HTMLEncoder) WriteEntry(w io.Writer, entry *expr.Expr) error {
	gen := sxhtml.NewGenerator().SetNewline()
	_, err := gen.WriteHTML(w, he.EntryHTML(entry, false, false))
	return err
}

// HTML returns the term as an HTML object list.
func (he *HTMLEncoder) HTML(e *expr.Expr, display bool) sx.Object {
	return he.html(e, display, false)
}

// Tag symbols not covered by the client library.
var (
	symDIV    = sx.MakeSymbol("div")
	symTABLE  = sx.MakeSymbol("table")
	symTR     = sx.MakeSymbol("tr")
	symTH     = sx.MakeSymbol("th")
	symTD     = sx.MakeSymbol("td")
	symBUTTON = sx.MakeSymbol("button")
	symIMG    = sx.MakeSymbol("img")
	symUL     = sx.MakeSymbol("ul")
	symLI     = sx.MakeSymbol("li")
	symPRE    = sx.MakeSymbol("pre")
	symTT     = sx.MakeSymbol("tt")
	symBR     = sx.MakeSymbol("br")
)

func attr(name, value string) *sx.Pair {
	return sx.Cons(sx.MakeSymbol(name), sx.MakeString(value))
}

func attrList(attrs ...*sx.Pair) *sx.Pair {
	var lb sx.ListBuilder
	lb.Add(sxhtml.SymAttr)
	for _, a := range attrs {
		lb.Add(a)
	}
	return lb.List()
}

func rawHTML(s string) *sx.Pair {
	return sx.MakeList(sxhtml.SymNoEscape, sx.MakeString(s))
}

func graySpan(text string) *sx.Pair {
	return sx.MakeList(shtml.SymSPAN,
		attrList(attr("style", "font-size:85%; color:#888")),
		sx.MakeString(text))
}

func mdash() *sx.Pair {
	return sx.MakeList(shtml.SymSPAN,
		attrList(attr("style", "color:#888")),
		rawHTML("&mdash;"))
}

func (he *HTMLEncoder) mathHTML(e *expr.Expr, display bool) *sx.Pair {
	return rawHTML(he.typeset(he.tex.TeX(e, false), display))
}

func (he *HTMLEncoder) html(e *expr.Expr, display, avoidLatex bool) sx.Object {
	if e.IsAtom() {
		if avoidLatex && e.IsInteger() {
			return sx.MakeString(e.IntValue().String())
		}
		return he.mathHTML(e, display)
	}
	if avoidLatex {
		args := e.Args()
		switch {
		case e.HeadIs("Decimal"):
			return rawHTML(decimalHTML(args[0].TextValue()))
		case e.HeadIs("Div") && args[0].IsInteger() && args[1].IsInteger():
			return sx.MakeString(args[0].IntValue().String() + "/" + args[1].IntValue().String())
		case e.HeadIs("Neg") && canRenderPlain(args[0]):
			return rawHTML("-" + plainHTML(args[0]))
		case e.HeadIs("Tuple") && canRenderPlain(e):
			return rawHTML(plainHTML(e))
		case e.HeadIs("Set") && canRenderPlain(e):
			return rawHTML(plainHTML(e))
		}
	}
	if head := e.Head(); head.IsSymbol() {
		switch head.Name() {
		case "Table":
			return he.htmlTable(e)
		case "Formula":
			return he.mathHTML(e.Args()[0], false)
		case "References":
			return htmlReferences(e)
		case "Assumptions":
			return he.htmlAssumptions(e)
		case "Description":
			return he.htmlDescription(e, display)
		case "SymbolDefinition":
			return he.htmlSymbolDefinition(e)
		case "Image":
			return he.htmlImage(e)
		}
	}
	return he.mathHTML(e, display)
}

// canRenderPlain reports whether a term consists purely of scalar values
// that render as plain HTML without typesetting.
func canRenderPlain(e *expr.Expr) bool {
	if e.IsInteger() {
		return true
	}
	switch {
	case e.HeadIs("Decimal"):
		return true
	case e.HeadIs("Div"):
		return e.Args()[0].IsInteger() && e.Args()[1].IsInteger()
	case e.HeadIs("Tuple"), e.HeadIs("Set"):
		for _, arg := range e.Args() {
			if !canRenderPlain(arg) {
				return false
			}
		}
		return true
	}
	return false
}

// plainHTML renders a scalar term as raw HTML. Must only be called when
// canRenderPlain holds, possibly under a leading Neg.
func plainHTML(e *expr.Expr) string {
	if e.IsInteger() {
		return e.IntValue().String()
	}
	args := e.Args()
	switch {
	case e.HeadIs("Decimal"):
		return decimalHTML(args[0].TextValue())
	case e.HeadIs("Div"):
		return args[0].IntValue().String() + "/" + args[1].IntValue().String()
	case e.HeadIs("Neg"):
		return "-" + plainHTML(args[0])
	case e.HeadIs("Tuple"):
		return "(" + joinPlainHTML(args) + ")"
	case e.HeadIs("Set"):
		return "{" + joinPlainHTML(args) + "}"
	}
	panic("encoder: term has no plain HTML form")
}

func joinPlainHTML(args []*expr.Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = plainHTML(a)
	}
	return strings.Join(parts, ", ")
}

// decimalHTML renders a decimal literal, turning an exponent marker into
// scientific notation.
func decimalHTML(text string) string {
	if mant, expo, ok := strings.Cut(text, "e"); ok {
		expo = strings.TrimLeft(expo, "+")
		return mant + " &middot; 10<sup>" + expo + "</sup>"
	}
	return text
}

func (he *HTMLEncoder) htmlTable(e *expr.Expr) *sx.Pair {
	rel := e.ArgWithHead("TableRelation")
	heads := e.ArgWithHead("TableHeadings")
	data := e.ArgWithHead("List")
	colheads := e.ArgWithHead("TableColumnHeadings")
	split := 1
	if sp := e.ArgWithHead("TableSplit"); sp != nil {
		split = int(sp.Args()[0].IntValue().Int64())
	}
	cols := data.Args()[0].Arity()
	if heads != nil {
		cols = heads.Arity()
	}
	rows := data.Args()
	num := len(rows)
	innum := num / split

	var headerRow *sx.Pair
	if heads != nil {
		var tr sx.ListBuilder
		tr.Add(symTR)
		for _, col := range heads.Args() {
			// nowrap avoids "n \ k" breaking across lines
			tr.Add(sx.MakeList(symTH,
				attrList(attr("style", "white-space:nowrap;")),
				he.html(col, false, true)))
		}
		headerRow = tr.List()
	}

	var outerRow sx.ListBuilder
	outerRow.AddN(symTR, attrList(attr("style", "border:0; background-color:#fff")))
	j := 0
	for outer := 0; outer < split; outer++ {
		end := innum * (outer + 1)
		if outer == split-1 {
			end = num
		}
		var tbl sx.ListBuilder
		tbl.AddN(symTABLE, attrList(attr("style", "float: left; margin-right: 1em;")))
		if headerRow != nil {
			tbl.Add(headerRow)
		}
		for _, row := range rows[innum*outer : end] {
			var tr sx.ListBuilder
			tr.Add(symTR)
			if row.HeadIs("TableSection") {
				tr.Add(sx.MakeList(symTD,
					attrList(
						attr("colspan", strconv.Itoa(cols)),
						attr("style", "text-align:center; font-weight: bold")),
					sx.MakeString(row.Args()[0].TextValue())))
			} else {
				if colheads != nil {
					tr.Add(sx.MakeList(symTH, he.html(colheads.Args()[j], false, true)))
				}
				for _, col := range row.Args() {
					tr.Add(sx.MakeList(symTD, he.html(col, false, true)))
				}
			}
			tbl.Add(tr.List())
			j++
		}
		outerRow.Add(sx.MakeList(symTD,
			attrList(attr("style", "border:0; background-color:#fff; vertical-align:top;")),
			tbl.List()))
	}

	var div sx.ListBuilder
	div.AddN(symDIV, attrList(attr("style", "overflow-x:auto;")))
	div.Add(sx.MakeList(symTABLE,
		attrList(
			attr("align", "center"),
			attr("style", "border:0; background-color:#fff;")),
		outerRow.List()))
	if rel != nil {
		caption := expr.Call(expr.Symbol("Description"),
			"Table data:", rel.Args()[0], " such that ", rel.Args()[1])
		div.Add(sx.MakeList(symDIV,
			attrList(attr("style", "text-align:center; margin-top: 0.5em")),
			he.htmlDescription(caption, true)))
	}
	return div.List()
}

func htmlReferences(e *expr.Expr) *sx.Pair {
	var ul sx.ListBuilder
	ul.Add(symUL)
	for _, ref := range e.Args() {
		ul.Add(sx.MakeList(symLI, sx.MakeString(ref.TextValue())))
	}
	return sx.MakeList(symDIV,
		subheadDiv("References:"),
		ul.List())
}

func (he *HTMLEncoder) htmlAssumptions(e *expr.Expr) *sx.Pair {
	var div sx.ListBuilder
	div.Add(symDIV)
	for num, arg := range e.Args() {
		label := "Assumptions"
		if num > 0 {
			label = "Alternative assumptions"
		}
		div.Add(sx.MakeList(symDIV,
			attrList(attr("style", "text-align:center; margin:0.8em")),
			sx.MakeList(shtml.SymSPAN,
				attrList(attr("style", "font-size:85%; color:#888; margin-right:0.8em")),
				sx.MakeString(label+":")),
			he.html(arg, false, false)))
	}
	return div.List()
}

func (he *HTMLEncoder) htmlDescription(e *expr.Expr, display bool) *sx.Pair {
	var lb sx.ListBuilder
	if display {
		lb.AddN(symDIV, attrList(attr("style", "text-align:center; margin:0.6em")))
	} else {
		lb.Add(shtml.SymSPAN)
	}
	pending := false // a space separator not yet emitted
	for _, arg := range e.Args() {
		var frag sx.Object
		switch {
		case arg.IsText():
			text := arg.TextValue()
			// Punctuation joins the previous fragment without a space.
			if text != "" && strings.ContainsRune(",.;", rune(text[0])) {
				pending = false
			}
			frag = sx.MakeString(text)
		case arg.HeadIs("SourceForm"):
			frag = sx.MakeList(symTT, sx.MakeString(arg.Args()[0].SourceString()))
		case arg.HeadIs("EntryReference"):
			id := arg.Args()[0].TextValue()
			frag = sx.MakeList(shtml.SymA,
				attrList(hrefAttr(he.entryDir+id+"/")),
				sx.MakeString(id))
		default:
			frag = he.html(arg, false, true)
		}
		if pending {
			lb.Add(sx.MakeString(" "))
		}
		lb.Add(frag)
		pending = true
	}
	return lb.List()
}

func (he *HTMLEncoder) htmlSymbolDefinition(e *expr.Expr) *sx.Pair {
	symbol, example, description := e.Args()[0], e.Args()[1], e.Args()[2]
	name := symbol.Name()
	return sx.MakeList(symDIV,
		attrList(attr("style", "text-align:center; margin:0.6em")),
		graySpan("Symbol:"),
		sx.MakeString(" "),
		sx.MakeList(symTT, he.symbolLink(name)),
		sx.MakeString(" "),
		mdash(),
		sx.MakeString(" "),
		he.mathHTML(example, false),
		sx.MakeString(" "),
		mdash(),
		sx.MakeString(" "),
		sx.MakeString(description.TextValue()))
}

func (he *HTMLEncoder) htmlImage(e *expr.Expr) *sx.Pair {
	description, image := e.Args()[0], e.Args()[1]
	path := image.Args()[0].TextValue()
	const thumbSize = "140px"

	var div sx.ListBuilder
	div.AddN(symDIV, attrList(attr("style", "text-align:center; margin:0.6em 0.4em 0.0em 0.2em")))
	div.AddN(graySpan("Image:"), sx.MakeString(" "))
	div.Add(he.html(description, false, false))
	div.Add(sx.MakeList(symBUTTON,
		attrList(
			attr("style", "margin:0 0 0 0.3em"),
			attr("onclick", fmt.Sprintf("toggleBig('%s', '%s%s_small.svg', '%s%s.svg')",
				path, he.imgDir, path, he.imgDir, path))),
		rawHTML("Big &#x1F50D;")))
	div.Add(sx.MakeList(symDIV,
		attrList(attr("style", "text-align:center; padding-right:1em;")),
		sx.MakeList(symIMG, attrList(
			attr("id", path),
			attr("src", he.imgDir+path+"_small.svg"),
			attr("style", "width:"+thumbSize+"; max-width:100%; margin-top:0.3em; margin-bottom:0px")))))
	return div.List()
}

func subheadDiv(text string) *sx.Pair {
	return sx.MakeList(symDIV,
		attrList(attr("class", "entrysubhead")),
		sx.MakeString(text))
}

func hrefAttr(url string) *sx.Pair {
	return sx.Cons(shtml.SymAttrHref, sx.MakeString(url))
}

func (he *HTMLEncoder) symbolLink(name string) *sx.Pair {
	return sx.MakeList(shtml.SymA,
		attrList(hrefAttr(he.symbolDir+name+"/")),
		sx.MakeString(name))
}

// EntryID returns the id text of an entry.
func EntryID(entry *expr.Expr) string {
	return entry.ArgWithHead("ID").Args()[0].TextValue()
}

// EntryHTML builds the full HTML of one documented entry: the formula,
// the foldable detail section with assumptions, references, the TeX
// listing, the definitions of all used symbols and the entry source.
// With single set the detail section is always visible and the entry
// header link is omitted.
func (he *HTMLEncoder) EntryHTML(entry *expr.Expr, single, defaultVisible bool) *sx.Pair {
	id := EntryID(entry)

	var args []*expr.Expr
	var imageDownloads []string
	for _, arg := range entry.Args() {
		if arg.HeadIs("ID") || arg.HeadIs("Variables") {
			continue
		}
		args = append(args, arg)
		if arg.HeadIs("Image") {
			imageDownloads = append(imageDownloads,
				arg.ArgWithHead("ImageSource").Args()[0].TextValue())
		}
	}

	var outer sx.ListBuilder
	outer.AddN(symDIV, attrList(attr("class", "entry")))

	// The first part is always visible.
	if single {
		outer.Add(sx.MakeList(symDIV,
			attrList(attr("style", "padding-top:0.4em")),
			he.html(args[0], true, false)))
	} else {
		outer.Add(sx.MakeList(symDIV,
			attrList(attr("style", "float:left; margin-top:0.0em; margin-right:0.3em")),
			sx.MakeList(shtml.SymA,
				attrList(
					hrefAttr(he.entryDir+id+"/"),
					attr("style", "margin-left:3pt; font-size:85%")),
				sx.MakeString(id)),
			sx.MakeString(" "),
			sx.MakeList(shtml.SymSPAN),
			sx.Cons(symBR, nil),
			sx.MakeList(symBUTTON,
				attrList(
					attr("style", "margin-top:0.2em; margin-bottom: 0.1em;"),
					attr("onclick", fmt.Sprintf("toggleVisible('%s:info')", id))),
				sx.MakeString("Details"))))
		outer.Add(sx.MakeList(symDIV, he.html(args[0], true, false)))
	}

	// Everything else sits beneath the fold.
	foldStyle := "display:none; padding: 1em; clear:both"
	if single {
		foldStyle = "padding: 1em; clear:both"
	} else if defaultVisible {
		foldStyle = "display:visible; padding: 1em; clear:both"
	}
	var fold sx.ListBuilder
	fold.AddN(symDIV, attrList(attr("id", id+":info"), attr("style", foldStyle)))

	if len(imageDownloads) > 0 {
		fold.Add(he.imageDownloadsHTML(imageDownloads[0]))
	}
	for _, arg := range args[1:] {
		fold.Add(he.html(arg, true, false))
	}

	if allTeX := he.tex.EntryTeX(entry); len(allTeX) > 0 {
		fold.Add(subheadDiv("TeX:"))
		fold.Add(sx.MakeList(symPRE, sx.MakeString(strings.Join(allTeX, "\n\n"))))
	}

	var symbols []*expr.Expr
	for _, sym := range entry.AllSymbols() {
		if !he.tab.ExcludeFromListings(sym) {
			symbols = append(symbols, sym)
		}
	}
	fold.Add(subheadDiv("Definitions:"))
	fold.Add(he.DefinitionsTable(symbols, true))

	fold.Add(subheadDiv("Source code for this entry:"))
	fold.Add(sx.MakeList(symPRE, sx.MakeString(entry.SourceString())))

	outer.Add(fold.List())
	return outer.List()
}

func (he *HTMLEncoder) imageDownloadsHTML(src string) *sx.Pair {
	downloads := []struct{ suffix, label string }{
		{"_small.png", "png (small)"},
		{"_medium.png", "png (medium)"},
		{"_large.png", "png (large)"},
		{"_small.pdf", "pdf (small)"},
		{".pdf", "pdf (medium/large)"},
		{"_small.svg", "svg (small)"},
		{".svg", "svg (medium/large)"},
	}
	var div sx.ListBuilder
	div.AddN(symDIV, attrList(attr("style", "text-align:center; margin-top:0; margin-bottom:1.1em")))
	div.AddN(graySpan("Download:"), sx.MakeString(" "))
	for i, dl := range downloads {
		if i > 0 {
			div.AddN(sx.MakeString(" "), mdash(), sx.MakeString(" "))
		}
		div.Add(sx.MakeList(shtml.SymA,
			attrList(hrefAttr(he.imgDir+src+dl.suffix)),
			sx.MakeString(dl.label)))
	}
	return div.List()
}

// DefinitionsTable builds the symbol definition listing shown at the
// bottom of entry pages and on symbol index pages.
func (he *HTMLEncoder) DefinitionsTable(symbols []*expr.Expr, center bool) *sx.Pair {
	var tbl sx.ListBuilder
	if center {
		tbl.AddN(symTABLE, attrList(attr("style", "margin: 0 auto")))
	} else {
		tbl.Add(symTABLE)
	}
	tbl.Add(sx.MakeList(symTR,
		sx.MakeList(symTH, sx.MakeString("Fungrim symbol")),
		sx.MakeList(symTH, sx.MakeString("Notation")),
		sx.MakeList(symTH, sx.MakeString("Short description"))))
	for _, sym := range symbols {
		descr := he.tab.DescriptionOf(sym)
		if descr == nil {
			continue
		}
		tbl.Add(sx.MakeList(symTR,
			sx.MakeList(symTD, sx.MakeList(symTT, he.symbolLink(sym.Name()))),
			sx.MakeList(symTD, he.mathHTML(descr.Example, false)),
			sx.MakeList(symTD, sx.MakeString(descr.Text))))
	}
	return tbl.List()
}
