package locator

// The portal's markup is not under our control, so every target carries a
// fallback list. Order is a tunable: attribute selectors first, then
// structural ones, then text-based XPath, then a generic scan.

// lowered rewrites XPath text() into lowercase for case-insensitive matching.
const lowered = "translate(text(), 'ABCDEFGHIJKLMNOPQRSTUVWXYZ', 'abcdefghijklmnopqrstuvwxyz')"

// ProjectButtons locates the per-project open buttons on the listing page.
var ProjectButtons = Chain{
	Target: "project open buttons",
	Strategies: []Strategy{
		{CSS, "a.btn.btn-primary"},
		{CSS, "a.btn-primary"},
		{CSS, ".btn-primary"},
		{CSS, "a[href*='project']"},
		{CSS, "a[href*='detail']"},
		{CSS, "button.btn-primary"},
		{CSS, ".project-item a"},
		{CSS, ".project-card a"},
		{CSS, "a.btn"},
		{XPath, "//a[contains(" + lowered + ", 'view') or contains(" + lowered + ", 'detail') or contains(" + lowered + ", 'more')]"},
	},
}

// PromoterTab locates the tab switching a detail page to promoter details.
var PromoterTab = Chain{
	Target: "promoter details tab",
	Strategies: []Strategy{
		{XPath, "//a[contains(" + lowered + ", 'promoter')]"},
		{XPath, "//a[contains(text(),'Promoter')]"},
		{XPath, "//li//a[contains(text(),'Promoter')]"},
		{XPath, "//*[@role='tab' and contains(text(),'Promoter')]"},
		{CSS, "a[href*='promoter']"},
		{CSS, ".nav-link[href*='promoter']"},
		{CSS, ".tab-link[href*='promoter']"},
		{CSS, "[data-toggle='tab'][href*='promoter']"},
	},
}

// DetailContent locates the container proving a project detail page loaded.
var DetailContent = Chain{
	Target: "project detail content",
	Strategies: []Strategy{
		{CSS, "div.details-project"},
		{CSS, ".project-details"},
		{CSS, ".detail-content"},
		{CSS, "[class*='detail']"},
		{CSS, ".container"},
	},
}
