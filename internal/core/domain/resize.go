package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ResizeRequest asks the coordinator to write a resized copy of one image.
// It is consumed exactly once and never persisted.
type ResizeRequest struct {
	// ID correlates the request with its terminal event.
	// Assigned by the coordinator when left empty.
	ID string

	// SourcePath is the absolute path of the image to resize.
	SourcePath string

	// Width is the target width in pixels.
	Width int

	// Height is the target height in pixels.
	Height int
}

// ParseDimension parses a user-entered width or height.
// The value must be a base-10 integer greater than zero.
func ParseDimension(field, text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, &DimensionError{Field: field, Reason: "is required"}
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, &DimensionError{Field: field, Value: text, Reason: "is not a whole number"}
	}
	if n <= 0 {
		return 0, &DimensionError{Field: field, Value: text, Reason: "must be greater than zero"}
	}
	return n, nil
}

// ParseResizeRequest builds a request from raw form values.
// Nothing is returned unless the path is set and both dimensions are valid.
func ParseResizeRequest(sourcePath, widthText, heightText string) (ResizeRequest, error) {
	if strings.TrimSpace(sourcePath) == "" {
		return ResizeRequest{}, fmt.Errorf("%w: please select an image first", ErrMissingInput)
	}

	width, err := ParseDimension("width", widthText)
	if err != nil {
		return ResizeRequest{}, err
	}
	height, err := ParseDimension("height", heightText)
	if err != nil {
		return ResizeRequest{}, err
	}

	return ResizeRequest{
		SourcePath: sourcePath,
		Width:      width,
		Height:     height,
	}, nil
}

// Validate re-checks a request that did not come through ParseResizeRequest.
func (r ResizeRequest) Validate() error {
	if strings.TrimSpace(r.SourcePath) == "" {
		return ErrMissingInput
	}
	if r.Width <= 0 {
		return &DimensionError{Field: "width", Value: strconv.Itoa(r.Width), Reason: "must be greater than zero"}
	}
	if r.Height <= 0 {
		return &DimensionError{Field: "height", Value: strconv.Itoa(r.Height), Reason: "must be greater than zero"}
	}
	return nil
}

// OutcomeStatus tags a ResizeOutcome.
type OutcomeStatus string

// Outcome statuses.
const (
	OutcomeSucceeded OutcomeStatus = "succeeded"
	OutcomeFailed    OutcomeStatus = "failed"
)

// ResizeOutcome is the single terminal result of a ResizeRequest.
type ResizeOutcome struct {
	RequestID string
	Status    OutcomeStatus

	// Message is the failure text. Empty on success.
	Message string

	// OutputPath is where the resized image was written. Empty on failure.
	OutputPath string

	Width  int
	Height int
}

// Success builds a successful outcome for req.
func Success(req ResizeRequest, outputPath string) ResizeOutcome {
	return ResizeOutcome{
		RequestID:  req.ID,
		Status:     OutcomeSucceeded,
		OutputPath: outputPath,
		Width:      req.Width,
		Height:     req.Height,
	}
}

// Failure builds a failed outcome for req carrying message verbatim.
func Failure(req ResizeRequest, message string) ResizeOutcome {
	return ResizeOutcome{
		RequestID: req.ID,
		Status:    OutcomeFailed,
		Message:   message,
		Width:     req.Width,
		Height:    req.Height,
	}
}

// Succeeded returns true for a successful outcome.
func (o ResizeOutcome) Succeeded() bool {
	return o.Status == OutcomeSucceeded
}

// Summary returns the user-facing notification text.
func (o ResizeOutcome) Summary() string {
	if o.Succeeded() {
		return fmt.Sprintf("Image resized to %d x %d successfully!", o.Width, o.Height)
	}
	return "Error: " + o.Message
}
