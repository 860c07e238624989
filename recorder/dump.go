package recorder

import (
	"github.com/goccy/go-json"
	"github.com/roadrunner-server/errors"
)

// Dump renders the records of a level as indented JSON, or all records when
// level is nil. It is meant for assertion failure messages.
func (r *Recorder) Dump(level any) ([]byte, error) {
	const op = errors.Op("recorder_dump")

	var recs []Record
	if level == nil {
		recs = r.Records()
	} else {
		var err error
		recs, err = r.RecordsOf(level)
		if err != nil {
			return nil, errors.E(op, err)
		}
	}

	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return nil, errors.E(op, err)
	}

	return data, nil
}
