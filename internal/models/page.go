// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// PageTemplate names the frontend template a page renders with.
type PageTemplate string

const (
	PageTemplateDefault   PageTemplate = "default"
	PageTemplateLanding   PageTemplate = "landing"
	PageTemplateAbout     PageTemplate = "about"
	PageTemplateContact   PageTemplate = "contact"
	PageTemplatePortfolio PageTemplate = "portfolio"
)

// MaxMenuTitleLen bounds the navigation label for a page.
const MaxMenuTitleLen = 50

// Page is a static site page. Pages form a tree through ParentID; the
// hierarchy is a read-side concern used only for menu and breadcrumb
// construction; scoring and lifecycle never look at it.
type Page struct {
	Content

	Body      string       `json:"body"`
	Template  PageTemplate `json:"template"`
	ParentID  *uuid.UUID   `json:"parent_id,omitempty"`
	PageOrder int          `json:"page_order"`

	// Navigation settings. At most one page system-wide may be the
	// homepage; the page store enforces this at save time.
	IsHomepage bool   `json:"is_homepage"`
	ShowInMenu bool   `json:"show_in_menu"`
	MenuTitle  string `json:"menu_title,omitempty"`

	CustomCSS string `json:"custom_css,omitempty"`
	CustomJS  string `json:"custom_js,omitempty"`
}

// AnalysisText returns the page body for readability and SEO scoring.
func (p *Page) AnalysisText() string { return p.Body }

// ExcerptText returns the opening of the body; pages carry no editorial
// excerpt of their own.
func (p *Page) ExcerptText() string { return excerptFromBody(p.Body) }

// DefaultMenuTitle fills in MenuTitle from the title when blank.
func (p *Page) DefaultMenuTitle() {
	if p.MenuTitle == "" && p.Title != "" {
		p.MenuTitle = truncateRunes(p.Title, MaxMenuTitleLen)
	}
}

// ParsePageTemplate validates a template name from the HTTP boundary.
// An empty string defaults to the default template.
func ParsePageTemplate(s string) (PageTemplate, error) {
	if s == "" {
		return PageTemplateDefault, nil
	}
	switch PageTemplate(s) {
	case PageTemplateDefault, PageTemplateLanding, PageTemplateAbout, PageTemplateContact, PageTemplatePortfolio:
		return PageTemplate(s), nil
	}
	return "", &ValidationError{Field: "template", Message: "unknown page template"}
}
