package dto

// StatsResponse is the dashboard aggregate served by GET /api/stats.
// Open and closed count only those exact statuses; total counts every
// action regardless of status.
type StatsResponse struct {
	Open        int64 `json:"open"`
	Closed      int64 `json:"closed"`
	Total       int64 `json:"total"`
	Projects    int64 `json:"projects"`
	TeamMembers int64 `json:"teamMembers"`
}
