package shared

import "github.com/dylan/copylink/clipboard"

// CopyResultMsg reports the end of one button activation.
type CopyResultMsg struct {
	ButtonID int
	Payload  string
	Result   clipboard.Result
}

// ButtonRevertMsg asks a button to leave its copied state. Seq identifies the
// activation that scheduled it.
type ButtonRevertMsg struct {
	ButtonID int
	Seq      int
}

// ToastHideMsg hides the toast shown with the same Seq.
type ToastHideMsg struct {
	Seq int
}
