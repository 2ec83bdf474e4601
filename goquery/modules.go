package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/mjaros/docstruct"
)

// Detection ceilings, applied before a candidate is returned.
const (
	maxNameRunes        = 100
	maxDescriptionRunes = 500
)

// Ensure ModuleDetector implements docstruct.ModuleDetector at compile time.
var _ docstruct.ModuleDetector = (*ModuleDetector)(nil)

// ModuleDetector identifies candidate modules in a content region.
//
// Four techniques run in priority order: top-tier headings, sectioned
// containers, emphasized list items, and header-bearing tables. The first
// technique yielding at least one usably-named candidate wins; a technique
// yielding nothing (or only nameless candidates) falls through to the next.
type ModuleDetector struct{}

// NewModuleDetector creates a new ModuleDetector.
func NewModuleDetector() *ModuleDetector {
	return &ModuleDetector{}
}

// moduleTechnique is one detection strategy over a parsed content region.
type moduleTechnique struct {
	name   string
	detect func(doc *goquery.Document) []*docstruct.Module
}

// DetectModules applies the detection techniques to a content region.
func (d *ModuleDetector) DetectModules(region *docstruct.ContentRegion) ([]*docstruct.Module, error) {
	if region == nil || strings.TrimSpace(region.HTML) == "" {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(region.HTML))
	if err != nil {
		return nil, docstruct.Errorf(docstruct.EINVALID, "failed to parse HTML: %v", err)
	}

	techniques := []moduleTechnique{
		{name: "headings", detect: detectFromHeadings},
		{name: "sections", detect: detectFromSections},
		{name: "lists", detect: detectFromLists},
		{name: "tables", detect: detectFromTables},
	}

	for _, t := range techniques {
		if candidates := finalize(t.detect(doc)); len(candidates) > 0 {
			return candidates, nil
		}
	}
	return nil, nil
}

// finalize discards candidates with unusable names and fills in defaults.
func finalize(candidates []*docstruct.Module) []*docstruct.Module {
	var out []*docstruct.Module
	for _, m := range candidates {
		m.Name = cleanText(m.Name)
		if m.Name == "" || len([]rune(m.Name)) > maxNameRunes {
			continue
		}
		m.Description = truncateRunes(cleanText(m.Description), maxDescriptionRunes)
		if m.Description == "" {
			m.Description = docstruct.DefaultDescription
		}
		if m.Submodules == nil {
			m.Submodules = docstruct.NewSubmoduleSet()
		}
		out = append(out, m)
	}
	return out
}

// detectFromHeadings treats each heading of the top tier as a module
// boundary. The tier of the first usable heading in document order wins.
// A module's description is the leading text after its heading up to the
// next heading of any tier; its local region runs to the next heading of
// equal-or-higher tier.
func detectFromHeadings(doc *goquery.Document) []*docstruct.Module {
	headings := doc.Find("h1, h2, h3, h4, h5, h6")
	if headings.Length() == 0 {
		return nil
	}

	topTier := 0
	headings.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if cleanText(s.Text()) == "" {
			return true
		}
		topTier = headingLevel(s.Get(0))
		return false
	})
	if topTier == 0 {
		return nil
	}

	var modules []*docstruct.Module
	headings.Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		if headingLevel(node) != topTier {
			return
		}
		name := cleanText(s.Text())
		if name == "" {
			return
		}
		desc, region := sectionAfter(node, topTier)
		m := docstruct.NewModule(name, desc)
		m.Region = region
		modules = append(modules, m)
	})
	return modules
}

// sectionAfter walks the siblings following a heading node. Description text
// accumulates from content elements until the first heading of any level;
// the region fragment accumulates until the next heading of level <= tier.
func sectionAfter(node *html.Node, tier int) (desc string, region string) {
	var descBuf, regionBuf bytes.Buffer
	collectDesc := true

	for n := node.NextSibling; n != nil; n = n.NextSibling {
		if level := headingLevel(n); level > 0 {
			if level <= tier {
				break
			}
			collectDesc = false
		}

		_ = html.Render(&regionBuf, n)

		if !collectDesc {
			continue
		}
		switch n.Type {
		case html.TextNode:
			descBuf.WriteString(n.Data)
			descBuf.WriteByte(' ')
		case html.ElementNode:
			switch n.Data {
			case "p", "div", "span", "section":
				descBuf.WriteString(nodeText(n))
				descBuf.WriteByte(' ')
			}
		}
		if descBuf.Len() > maxDescriptionRunes*4 {
			collectDesc = false
		}
	}
	return descBuf.String(), regionBuf.String()
}

// detectFromSections treats containers with module/section class or id
// signals as module boundaries. The container's labeling element supplies
// the name; the first paragraph supplies the description.
func detectFromSections(doc *goquery.Document) []*docstruct.Module {
	const containerSelector = "section[class*='module'], section[id*='module'], " +
		"div[class*='module'], div[id*='module'], " +
		"section[class*='section'], div[class*='section']"

	var modules []*docstruct.Module
	doc.Find(containerSelector).Each(func(_ int, s *goquery.Selection) {
		// Outermost container wins; nested matches belong to their parent.
		if s.ParentsFiltered(containerSelector).Length() > 0 {
			return
		}

		label := s.Find("h1, h2, h3, h4, h5, h6, header, legend, .title, .heading").First()
		name := cleanText(label.Text())
		if name == "" {
			return
		}

		desc := cleanText(s.Find("p").First().Text())
		region, _ := s.Html()

		m := docstruct.NewModule(name, desc)
		m.Region = region
		modules = append(modules, m)
	})
	return modules
}

// detectFromLists treats top-level list items with leading emphasized text
// as modules: the emphasis is the name, the remaining item text the
// description.
func detectFromLists(doc *goquery.Document) []*docstruct.Module {
	var modules []*docstruct.Module
	doc.Find("ul, ol").Each(func(_ int, list *goquery.Selection) {
		// Nested lists hold submodules, not modules.
		if list.ParentsFiltered("li").Length() > 0 {
			return
		}

		list.ChildrenFiltered("li").Each(func(_ int, item *goquery.Selection) {
			em := item.Find("b, strong").First()
			if em.Length() == 0 {
				return
			}

			name := cleanText(em.Text())
			itemText := cleanText(item.Text())
			if name == "" || !strings.HasPrefix(itemText, name) {
				return
			}

			desc := strings.TrimSpace(strings.TrimPrefix(itemText, name))
			desc = strings.TrimSpace(strings.TrimLeft(desc, ":-–"))

			region, _ := goquery.OuterHtml(item)
			m := docstruct.NewModule(name, desc)
			m.Region = region
			modules = append(modules, m)
		})
	})
	return modules
}

// detectFromTables yields one module per data row of tables whose header
// column names module/name semantics.
func detectFromTables(doc *goquery.Document) []*docstruct.Module {
	var modules []*docstruct.Module
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		if table.Find("th").Length() == 0 {
			return
		}

		headerCells := table.Find("tr").First().Find("th, td")
		nameCol := -1
		headerCells.EachWithBreak(func(i int, c *goquery.Selection) bool {
			t := strings.ToLower(cleanText(c.Text()))
			if strings.Contains(t, "module") || strings.Contains(t, "name") {
				nameCol = i
				return false
			}
			return true
		})
		if nameCol == -1 {
			return
		}
		descCol := nameCol + 1

		table.Find("tr").Slice(1, goquery.ToEnd).Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td, th")
			if cells.Length() <= nameCol {
				return
			}
			name := cleanText(cells.Eq(nameCol).Text())
			if name == "" {
				return
			}
			var desc string
			if cells.Length() > descCol {
				desc = cleanText(cells.Eq(descCol).Text())
			}

			region, _ := goquery.OuterHtml(row)
			m := docstruct.NewModule(name, desc)
			m.Region = region
			modules = append(modules, m)
		})
	})
	return modules
}

// headingLevel returns 1-6 for h1-h6 element nodes and 0 otherwise.
func headingLevel(n *html.Node) int {
	if n == nil || n.Type != html.ElementNode {
		return 0
	}
	switch n.Data {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

// nodeText flattens the text content of a node subtree.
func nodeText(n *html.Node) string {
	var buf bytes.Buffer
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

// truncateRunes caps s at n runes, marking cuts with "...".
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
