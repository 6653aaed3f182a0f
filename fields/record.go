package fields

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/odisha-tools/rerascan/models"
)

// Label variants per promoter field. The portal renders these
// inconsistently across projects, so each field is tried in order.
var (
	promoterNameLabels    = []string{"Company Name", "Promoter Name", "Developer Name", "Builder Name"}
	promoterAddressLabels = []string{"Registered Office Address", "Address", "Office Address", "Registered Address"}
	gstLabels             = []string{"GST No", "GST", "GST Number", "GSTIN"}
)

// knownLabelWords flags labels that belong to the fixed column set, so the
// extra-field collector does not duplicate them.
var knownLabelWords = []string{
	"regd", "project name", "project type", "project status",
	"company name", "promoter name", "developer name", "builder name",
	"address", "gst",
}

// BasicInfo reads the Basic Info tab fields, sentinel-filling misses.
func (e *Extractor) BasicInfo() models.BasicInfo {
	return models.BasicInfo{
		RegistrationNo: e.Value("RERA Regd. No"),
		ProjectName:    e.Value("Project Name"),
		ProjectType:    e.Value("Project Type"),
		ProjectStatus:  e.Value("Project Status"),
	}
}

// PromoterInfo reads the promoter tab fields, sentinel-filling misses, and
// collects any additional labeled fields present on the tab.
func (e *Extractor) PromoterInfo() models.PromoterInfo {
	return models.PromoterInfo{
		Name:    e.Value(promoterNameLabels...),
		Address: e.Value(promoterAddressLabels...),
		GSTNo:   e.Value(gstLabels...),
		Extra:   e.extraPairs(),
	}
}

// HasPromoterContent reports whether any promoter field currently yields a
// value. The navigator polls this after clicking the promoter tab, since
// the tab renders its content asynchronously.
func (e *Extractor) HasPromoterContent() bool {
	probes := [][]string{promoterNameLabels, promoterAddressLabels, gstLabels}
	for _, labels := range probes {
		for _, label := range labels {
			if _, ok := e.lookup(label); ok {
				return true
			}
		}
	}
	return false
}

// extraPairs collects label/value pairs outside the fixed column set.
func (e *Extractor) extraPairs() map[string]string {
	var extra map[string]string
	e.doc.FindMatcher(detailBlockSel).Each(func(_ int, block *goquery.Selection) {
		lab := block.FindMatcher(labelSel).First()
		strong := block.FindMatcher(strongSel).First()
		if lab.Length() == 0 || strong.Length() == 0 {
			return
		}
		label := strings.TrimSpace(lab.Text())
		value := strings.TrimSpace(strong.Text())
		if label == "" || value == "" || isKnownLabel(label) {
			return
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		extra[label] = value
	})
	return extra
}

func isKnownLabel(label string) bool {
	lower := strings.ToLower(label)
	for _, w := range knownLabelWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
