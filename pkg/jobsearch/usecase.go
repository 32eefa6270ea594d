package jobsearch

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// UseCase describes the job search proxy behavior.
type UseCase interface {
	Search(ctx context.Context, q Query) ([]Job, error)
	MasterData(ctx context.Context) (MasterData, error)
}

// Searcher is the upstream port, satisfied by *Client.
type Searcher interface {
	Search(ctx context.Context, params url.Values) ([]UpstreamJob, error)
}

// defaultQuery is used when every free-text filter is blank.
const defaultQuery = "Software Engineer"

// maxResults caps one proxy response.
const maxResults = 10

// employmentTypes maps accepted synonyms to the upstream enum codes.
var employmentTypes = map[string]string{
	"full time":  "FULLTIME",
	"full-time":  "FULLTIME",
	"fulltime":   "FULLTIME",
	"part time":  "PARTTIME",
	"part-time":  "PARTTIME",
	"parttime":   "PARTTIME",
	"contract":   "CONTRACT",
	"intern":     "INTERN",
	"internship": "INTERN",
	"temporary":  "TEMPORARY",
}

type service struct {
	upstream   Searcher
	masterData MasterDataRepository
}

// NewService returns the default implementation of UseCase.
func NewService(upstream Searcher, masterData MasterDataRepository) UseCase {
	return &service{upstream: upstream, masterData: masterData}
}

func (s *service) Search(ctx context.Context, q Query) ([]Job, error) {
	params := url.Values{}
	params.Set("query", buildQueryText(q.Role, q.Location))
	page := q.Page
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("num_pages", "1")
	if code, ok := employmentTypes[strings.ToLower(strings.TrimSpace(q.Type))]; ok && q.Type != "" {
		params.Set("employment_types", code)
	}
	if q.Salary > 0 {
		params.Set("salary_min", strconv.Itoa(q.Salary))
	}

	records, err := s.upstream.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	// Empty upstream data is a valid empty result, not an error.
	jobs := make([]Job, 0, len(records))
	for _, rec := range records {
		jobs = append(jobs, reshape(rec))
	}
	if site := strings.ToLower(strings.TrimSpace(q.Site)); site != "" {
		filtered := jobs[:0]
		for _, j := range jobs {
			if strings.Contains(strings.ToLower(j.Site), site) {
				filtered = append(filtered, j)
			}
		}
		jobs = filtered
	}
	if len(jobs) > maxResults {
		jobs = jobs[:maxResults]
	}
	return jobs, nil
}

func (s *service) MasterData(ctx context.Context) (MasterData, error) {
	return s.masterData.Load(ctx)
}

func buildQueryText(role, location string) string {
	text := role
	if location != "" {
		text += " in " + location
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return defaultQuery
	}
	return text
}

func reshape(rec UpstreamJob) Job {
	title := rec.JobTitle
	if title == "" {
		title = "Unknown Position"
	}
	company := rec.EmployerName
	if company == "" {
		company = "Unknown Company"
	}
	location := rec.JobCity
	if location == "" {
		location = "N/A"
	}
	applyLink := rec.JobApplyLink
	if applyLink == "" {
		applyLink = "#"
	}
	return Job{
		Title:       title,
		Company:     company,
		Location:    location,
		Description: stripTags(rec.JobDescription),
		ApplyLink:   applyLink,
		Site:        deriveSite(applyLink, rec.EmployerWebsite),
		Salary:      formatSalary(rec.JobSalaryCurrency, rec.JobMinSalary, rec.JobMaxSalary),
	}
}

// deriveSite labels a job by the apply link's host, falling back to the
// employer website and finally a generic label.
func deriveSite(applyLink, employerWebsite string) string {
	if u, err := url.Parse(applyLink); err == nil && u.Host != "" {
		return u.Host
	}
	if employerWebsite != "" {
		return employerWebsite
	}
	return "website"
}

func formatSalary(currency string, min, max *float64) string {
	// A zero bound means the upstream has no figure, same as a missing one.
	if currency == "" || (!disclosed(min) && !disclosed(max)) {
		return "Not disclosed"
	}
	return fmt.Sprintf("%s %s - %s", currency, formatAmount(min), formatAmount(max))
}

func disclosed(v *float64) bool {
	return v != nil && *v != 0
}

func formatAmount(v *float64) string {
	if v == nil {
		return "?"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// stripTags removes inline markup, leaving plain text.
func stripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}
