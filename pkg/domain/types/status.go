package types

// ResultStatus is the discriminant of a hosting CLI JSON result
type ResultStatus string

const (
	ResultStatusSuccess ResultStatus = "success"
	ResultStatusSkipped ResultStatus = "skipped"
	ResultStatusError   ResultStatus = "error"
)

// String returns the string representation of the status
func (s ResultStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one the hosting CLI emits
func (s ResultStatus) IsValid() bool {
	switch s {
	case ResultStatusSuccess, ResultStatusSkipped, ResultStatusError:
		return true
	default:
		return false
	}
}

// OperationKind identifies one of the hosting operations
type OperationKind string

const (
	OperationDeployPreview           OperationKind = "deploy-preview"
	OperationDeployProduction        OperationKind = "deploy-production"
	OperationRemovePreview           OperationKind = "remove-preview"
	OperationRemoveProductionPreview OperationKind = "remove-production-preview"
)

// String returns the string representation of the operation kind
func (k OperationKind) String() string {
	return string(k)
}

// IsValid checks if the operation kind is known
func (k OperationKind) IsValid() bool {
	switch k {
	case OperationDeployPreview, OperationDeployProduction, OperationRemovePreview, OperationRemoveProductionPreview:
		return true
	default:
		return false
	}
}

// OutputMode selects how the hosting CLI reports its outcome
type OutputMode string

const (
	// OutputModeJSON makes the CLI print a single machine-readable JSON blob
	OutputModeJSON OutputMode = "json"
	// OutputModeDebug makes the CLI print verbose human-readable diagnostics
	OutputModeDebug OutputMode = "debug"
)

// Flag returns the command-line flag that enables the mode
func (m OutputMode) Flag() string {
	return "--" + string(m)
}
