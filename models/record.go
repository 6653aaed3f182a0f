package models

import "time"

// Sentinel is the placeholder stored for any field that could not be
// extracted. Rows always carry the full column set; a scraping failure on
// one field never removes the column.
const Sentinel = "Not found"

// BasicInfo is the first detail tab of a project.
type BasicInfo struct {
	RegistrationNo string
	ProjectName    string
	ProjectType    string
	ProjectStatus  string
}

// PromoterInfo is the promoter detail tab of a project.
type PromoterInfo struct {
	Name    string
	Address string
	GSTNo   string
	// Extra holds additional labeled fields found on the promoter tab that
	// are not part of the fixed column set. Informational only; not exported.
	Extra map[string]string
}

// ProjectRecord is the merged per-project row. It is created while a
// project's detail pages are open, appended to the result list once, and
// never mutated afterwards.
type ProjectRecord struct {
	Basic     BasicInfo
	Promoter  PromoterInfo
	ScrapedAt time.Time
}

// NewProjectRecord returns a record with every field pre-filled with the
// sentinel, so partially scraped projects still produce complete rows.
func NewProjectRecord() ProjectRecord {
	return ProjectRecord{
		Basic: BasicInfo{
			RegistrationNo: Sentinel,
			ProjectName:    Sentinel,
			ProjectType:    Sentinel,
			ProjectStatus:  Sentinel,
		},
		Promoter: PromoterInfo{
			Name:    Sentinel,
			Address: Sentinel,
			GSTNo:   Sentinel,
		},
		ScrapedAt: time.Now(),
	}
}

// Columns is the fixed, ordered column set of the exported table.
func Columns() []string {
	return []string{
		"RERA Regd. No",
		"Project Name",
		"Project Type",
		"Project Status",
		"Promoter Name",
		"Promoter Address",
		"GST No",
		"Scraped At",
	}
}

// Row returns the record's values in Columns order.
func (r ProjectRecord) Row() []string {
	return []string{
		r.Basic.RegistrationNo,
		r.Basic.ProjectName,
		r.Basic.ProjectType,
		r.Basic.ProjectStatus,
		r.Promoter.Name,
		r.Promoter.Address,
		r.Promoter.GSTNo,
		r.ScrapedAt.Format("2006-01-02 15:04:05"),
	}
}
