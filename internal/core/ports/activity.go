package ports

import "github.com/brvhprince/planner-api/internal/core/domain"

// ActivityRecorder appends audit records. The production implementation
// hands records to a sharded background dispatcher; stubs record inline.
type ActivityRecorder interface {
	Record(activity *domain.Activity)
}
