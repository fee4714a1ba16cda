package msmodel

type TestRun struct {
	ID              int            `json:"id"`
	ProjectID       int            `json:"project_id"`
	ShortCode       string         `json:"short_code"`
	DutID           string         `json:"dut_id"`
	MachineHostname string         `json:"machine_hostname"`
	UserName        string         `json:"user_name"`
	TestName        string         `json:"test_name"`
	Data            map[string]any `json:"data,omitempty"`
}

// Measurement rows are passed through to the page untouched.
type Measurement map[string]any
