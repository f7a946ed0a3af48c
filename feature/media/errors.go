package media

import "fmt"

// AcquisitionError reports a failed image acquisition. The Stage field names
// the step that failed: "download", "inspect", or "upload".
type AcquisitionError struct {
	Stage string
	URL   string
	Err   error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("media %s %s: %v", e.Stage, e.URL, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}
