package jobsearch

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	lastParams url.Values
	records    []UpstreamJob
	err        error
}

func (f *fakeSearcher) Search(_ context.Context, params url.Values) ([]UpstreamJob, error) {
	f.lastParams = params
	return f.records, f.err
}

func float(v float64) *float64 { return &v }

func TestSearchQueryBuilding(t *testing.T) {
	cases := []struct {
		name string
		q    Query
		want url.Values
	}{
		{
			name: "defaults when blank",
			q:    Query{},
			want: url.Values{"query": {"Software Engineer"}, "page": {"1"}, "num_pages": {"1"}},
		},
		{
			name: "role and location combine",
			q:    Query{Role: "Go Developer", Location: "Berlin", Page: 3},
			want: url.Values{"query": {"Go Developer in Berlin"}, "page": {"3"}, "num_pages": {"1"}},
		},
		{
			name: "employment type synonym normalized",
			q:    Query{Type: "Full Time"},
			want: url.Values{"query": {"Software Engineer"}, "page": {"1"}, "num_pages": {"1"}, "employment_types": {"FULLTIME"}},
		},
		{
			name: "internship maps to INTERN",
			q:    Query{Type: "internship"},
			want: url.Values{"query": {"Software Engineer"}, "page": {"1"}, "num_pages": {"1"}, "employment_types": {"INTERN"}},
		},
		{
			name: "unknown type is dropped",
			q:    Query{Type: "gig"},
			want: url.Values{"query": {"Software Engineer"}, "page": {"1"}, "num_pages": {"1"}},
		},
		{
			name: "salary floor forwarded",
			q:    Query{Salary: 90000},
			want: url.Values{"query": {"Software Engineer"}, "page": {"1"}, "num_pages": {"1"}, "salary_min": {"90000"}},
		},
		{
			name: "page below one clamps to one",
			q:    Query{Page: -2},
			want: url.Values{"query": {"Software Engineer"}, "page": {"1"}, "num_pages": {"1"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			up := &fakeSearcher{}
			_, err := NewService(up, nil).Search(context.Background(), tc.q)
			require.NoError(t, err)
			assert.Equal(t, tc.want, up.lastParams)
		})
	}
}

func TestSearchEmptyUpstreamIsEmptyResult(t *testing.T) {
	jobs, err := NewService(&fakeSearcher{}, nil).Search(context.Background(), Query{})
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestSearchReshapeFallbacks(t *testing.T) {
	up := &fakeSearcher{records: []UpstreamJob{{
		JobDescription: "<p>Write <b>Go</b></p>",
	}}}
	jobs, err := NewService(up, nil).Search(context.Background(), Query{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	assert.Equal(t, Job{
		Title:       "Unknown Position",
		Company:     "Unknown Company",
		Location:    "N/A",
		Description: "Write Go",
		ApplyLink:   "#",
		Site:        "website",
		Salary:      "Not disclosed",
	}, jobs[0])
}

func TestSearchSiteDerivation(t *testing.T) {
	up := &fakeSearcher{records: []UpstreamJob{
		{JobTitle: "A", JobApplyLink: "https://www.linkedin.com/jobs/123"},
		{JobTitle: "B", EmployerWebsite: "acme.example"},
	}}
	jobs, err := NewService(up, nil).Search(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, "www.linkedin.com", jobs[0].Site)
	assert.Equal(t, "acme.example", jobs[1].Site)
}

func TestSearchSalaryFormatting(t *testing.T) {
	up := &fakeSearcher{records: []UpstreamJob{
		{JobTitle: "A", JobSalaryCurrency: "USD", JobMinSalary: float(90000), JobMaxSalary: float(120000)},
		{JobTitle: "B", JobSalaryCurrency: "EUR", JobMaxSalary: float(80000)},
		{JobTitle: "C", JobMinSalary: float(50000)},
		{JobTitle: "D", JobSalaryCurrency: "USD", JobMinSalary: float(0), JobMaxSalary: float(0)},
		{JobTitle: "E", JobSalaryCurrency: "USD", JobMaxSalary: float(0)},
	}}
	jobs, err := NewService(up, nil).Search(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, "USD 90000 - 120000", jobs[0].Salary)
	assert.Equal(t, "EUR ? - 80000", jobs[1].Salary)
	assert.Equal(t, "Not disclosed", jobs[2].Salary)
	// Zero bounds mean the upstream has no real figure.
	assert.Equal(t, "Not disclosed", jobs[3].Salary)
	assert.Equal(t, "Not disclosed", jobs[4].Salary)
}

func TestSearchSiteFilter(t *testing.T) {
	up := &fakeSearcher{records: []UpstreamJob{
		{JobTitle: "A", JobApplyLink: "https://www.linkedin.com/jobs/1"},
		{JobTitle: "B", JobApplyLink: "https://indeed.com/jobs/2"},
	}}
	jobs, err := NewService(up, nil).Search(context.Background(), Query{Site: "LinkedIn"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "A", jobs[0].Title)
}

func TestSearchCapsResults(t *testing.T) {
	records := make([]UpstreamJob, 25)
	for i := range records {
		records[i] = UpstreamJob{JobTitle: "Job"}
	}
	jobs, err := NewService(&fakeSearcher{records: records}, nil).Search(context.Background(), Query{})
	require.NoError(t, err)
	assert.Len(t, jobs, 10)
}
