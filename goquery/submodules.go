package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mjaros/docstruct"
)

// submoduleKeywords mark markup likely to enumerate submodules. An element
// is considered relevant to a module when its text mentions the module's
// name or any of these.
var submoduleKeywords = []string{
	"submodule", "component", "feature", "function", "method",
	"property", "attribute", "parameter", "option", "setting",
	"configuration", "api", "endpoint", "service", "utility",
	"helper", "tool", "plugin", "extension", "add-on",
}

// signatureRe matches declaration-like lines in code blocks,
// e.g. "function render" or "property timeout".
var signatureRe = regexp.MustCompile(
	`(?i)(function|method|class|property|attribute|parameter|option|setting|feature)\s+([A-Za-z0-9_]+)`)

// Ensure SubmoduleDetector implements docstruct.SubmoduleDetector at compile time.
var _ docstruct.SubmoduleDetector = (*SubmoduleDetector)(nil)

// SubmoduleDetector enriches modules with submodules found in their local
// region. Five techniques apply: table rows, definition lists, named
// sub-sections, nested list items, and code-block signatures. In aggressive
// mode all five run unconditionally; otherwise detection stops at the first
// technique that yields any result.
type SubmoduleDetector struct {
	aggressive bool
}

// NewSubmoduleDetector creates a new SubmoduleDetector.
func NewSubmoduleDetector(aggressive bool) *SubmoduleDetector {
	return &SubmoduleDetector{aggressive: aggressive}
}

// submoduleTechnique is one enrichment strategy over a module's local region.
type submoduleTechnique func(doc *goquery.Document, module *docstruct.Module)

// DetectSubmodules enriches module in place. The module's own region is
// preferred; when a technique produced no region the full content region is
// searched with per-element relevance checks.
func (d *SubmoduleDetector) DetectSubmodules(module *docstruct.Module, region *docstruct.ContentRegion) error {
	local := module.Region
	if strings.TrimSpace(local) == "" && region != nil {
		local = region.HTML
	}
	if strings.TrimSpace(local) == "" {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(local))
	if err != nil {
		return docstruct.Errorf(docstruct.EINVALID, "failed to parse HTML: %v", err)
	}

	if module.Submodules == nil {
		module.Submodules = docstruct.NewSubmoduleSet()
	}

	techniques := []submoduleTechnique{
		submodulesFromTables,
		submodulesFromDefinitionLists,
		submodulesFromSubSections,
		submodulesFromNestedLists,
		submodulesFromCodeBlocks,
	}

	for _, t := range techniques {
		before := module.Submodules.Len()
		t(doc, module)
		if !d.aggressive && module.Submodules.Len() > before {
			break
		}
	}
	return nil
}

// addSubmodule applies the shared acceptance rules: usable name, not the
// module's own name, duplicate collapse via the set's policy.
func addSubmodule(module *docstruct.Module, name, desc string) {
	name = cleanText(name)
	if name == "" || len([]rune(name)) >= maxNameRunes {
		return
	}
	if docstruct.NormalizeName(name) == docstruct.NormalizeName(module.Name) {
		return
	}
	module.Submodules.Add(name, truncateRunes(cleanText(desc), maxDescriptionRunes))
}

// relevant reports whether an element's text concerns the module.
func relevant(text string, module *docstruct.Module) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, strings.ToLower(module.Name)) {
		return true
	}
	for _, kw := range submoduleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// submodulesFromTables reads data rows as name/description pairs,
// skipping the header row.
func submodulesFromTables(doc *goquery.Document, module *docstruct.Module) {
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		if !relevant(table.Text(), module) {
			return
		}
		table.Find("tr").Slice(1, goquery.ToEnd).Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td, th")
			if cells.Length() < 2 {
				return
			}
			addSubmodule(module, cells.Eq(0).Text(), cells.Eq(1).Text())
		})
	})
}

// submodulesFromDefinitionLists pairs each dt with its following dd.
func submodulesFromDefinitionLists(doc *goquery.Document, module *docstruct.Module) {
	doc.Find("dl").Each(func(_ int, dl *goquery.Selection) {
		if !relevant(dl.Text(), module) {
			return
		}
		dl.Find("dt").Each(func(_ int, dt *goquery.Selection) {
			desc := dt.NextAllFiltered("dd").First().Text()
			addSubmodule(module, dt.Text(), desc)
		})
	})
}

// submodulesFromSubSections reads named sub-sections: an h3-h6 heading
// supplies the name, its next paragraph the description.
func submodulesFromSubSections(doc *goquery.Document, module *docstruct.Module) {
	doc.Find("h3, h4, h5, h6").Each(func(_ int, h *goquery.Selection) {
		desc := h.NextAllFiltered("p").First().Text()
		addSubmodule(module, h.Text(), desc)
	})
}

// submodulesFromNestedLists splits list items into name and description via
// separator, emphasis, or link conventions. Items with no recognizable
// structure become names with a synthesized description.
func submodulesFromNestedLists(doc *goquery.Document, module *docstruct.Module) {
	doc.Find("ul, ol").Each(func(_ int, list *goquery.Selection) {
		if !relevant(list.Text(), module) {
			return
		}
		list.Find("li").Each(func(_ int, item *goquery.Selection) {
			itemText := cleanText(item.Text())
			if itemText == "" {
				return
			}

			if name, desc, ok := splitNameDesc(itemText); ok {
				addSubmodule(module, name, desc)
				return
			}
			if em := item.Find("strong, b").First(); em.Length() > 0 {
				name := cleanText(em.Text())
				addSubmodule(module, name, strings.Replace(itemText, name, "", 1))
				return
			}
			if a := item.Find("a").First(); a.Length() > 0 {
				name := cleanText(a.Text())
				addSubmodule(module, name, strings.Replace(itemText, name, "", 1))
				return
			}
			addSubmodule(module, itemText, "Feature or setting in "+module.Name)
		})
	})
}

// submodulesFromCodeBlocks scans code blocks for declaration-like
// signature lines.
func submodulesFromCodeBlocks(doc *goquery.Document, module *docstruct.Module) {
	doc.Find("pre, code").Each(func(_ int, block *goquery.Selection) {
		for _, m := range signatureRe.FindAllStringSubmatch(block.Text(), -1) {
			kind := strings.ToUpper(m[1][:1]) + strings.ToLower(m[1][1:])
			addSubmodule(module, m[2], kind+" in "+module.Name)
		}
	})
}
