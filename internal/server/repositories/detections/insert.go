package detections

import (
	"fmt"
	"strings"

	"github.com/blustick/blustick-api/internal/server/models"
)

// FieldsPerRecord is the number of bound parameters each detection occupies
// in the multi-row insert.
const FieldsPerRecord = 8

// BuildInsert renders the multi-row INSERT statement and its flattened
// argument list. Record i binds the parameter block
// $(i*FieldsPerRecord+1) .. $(i*FieldsPerRecord+FieldsPerRecord); blocks
// never overlap and leave no gaps. The function is pure so the offset
// arithmetic can be tested without a live store.
func BuildInsert(rows []models.NewDetection) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO detections
		(event_id, mac_address, signal_type, rssi, estimated_distance, latitude, longitude, detected_at)
		VALUES `)

	args := make([]any, 0, len(rows)*FieldsPerRecord)
	for i, d := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * FieldsPerRecord
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8)
		args = append(args,
			d.EventID,
			d.MACAddress,
			d.SignalType,
			d.RSSI,
			d.EstimatedDistance,
			d.Latitude,
			d.Longitude,
			d.DetectedAt,
		)
	}

	return sb.String(), args
}
