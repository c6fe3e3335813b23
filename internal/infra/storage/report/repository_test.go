package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func TestBuildRevenueQuery(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		period   domain.ReportPeriod
		wantSQL  string
		wantArgs []interface{}
	}{
		"unbounded": {
			period:  domain.ReportPeriod{},
			wantSQL: "SELECT COALESCE(SUM(total_cost), 0), COUNT(id) FROM parking_sessions WHERE (time_out IS NOT NULL AND total_cost IS NOT NULL)",
		},
		"bounded": {
			period: domain.ReportPeriod{Start: &start, End: &end},
			wantSQL: "SELECT COALESCE(SUM(total_cost), 0), COUNT(id) FROM parking_sessions " +
				"WHERE (time_out IS NOT NULL AND total_cost IS NOT NULL) AND time_out >= $1 AND time_in <= $2",
			wantArgs: []interface{}{start, end},
		},
		"only end": {
			period: domain.ReportPeriod{End: &end},
			wantSQL: "SELECT COALESCE(SUM(total_cost), 0), COUNT(id) FROM parking_sessions " +
				"WHERE (time_out IS NOT NULL AND total_cost IS NOT NULL) AND time_in <= $1",
			wantArgs: []interface{}{end},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			query, args, err := buildRevenueQuery(tt.period)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, len(tt.wantArgs), len(args))
			for i := range tt.wantArgs {
				assert.Equal(t, tt.wantArgs[i], args[i])
			}
		})
	}
}

func TestBuildSessionsCountQuery(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	query, args, err := buildSessionsCountQuery(domain.ReportPeriod{Start: &start, End: &end})
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(id) FROM parking_sessions WHERE time_in >= $1 AND time_in <= $2", query)
	assert.Equal(t, []interface{}{start, end}, args)
}

func TestBuildOverlappingQuery(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	query, args, err := buildOverlappingQuery(from, to)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, time_in, time_out, total_cost FROM parking_sessions "+
			"WHERE (time_out IS NOT NULL AND total_cost IS NOT NULL) AND time_in <= $1 AND time_out >= $2 ORDER BY id ASC",
		query)
	assert.Equal(t, []interface{}{to, from}, args)
}

func TestBuildSessionsByPeriodQuery(t *testing.T) {
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, g := range []domain.Granularity{domain.GranularityDay, domain.GranularityWeek, domain.GranularityMonth} {
		t.Run(string(g), func(t *testing.T) {
			query, args, err := buildSessionsByPeriodQuery(g, since)
			require.NoError(t, err)
			assert.Equal(t,
				"SELECT date_trunc('"+string(g)+"', time_in) AS period, COUNT(id) FROM parking_sessions "+
					"WHERE time_in >= $1 GROUP BY 1 ORDER BY 1",
				query)
			assert.Equal(t, []interface{}{since}, args)
		})
	}
}
