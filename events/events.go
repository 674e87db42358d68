// Package events defines the AG-UI protocol event vocabulary replayed by the
// mock server. The set of kinds is closed: every kind has its own struct that
// carries exactly the fields of that kind, and a constructor that fills in
// defaults for unset arguments.
package events

// EventType is the "type" discriminator carried by every event.
type EventType string

const (
	TypeRunStarted   EventType = "RUN_STARTED"
	TypeRunFinished  EventType = "RUN_FINISHED"
	TypeRunError     EventType = "RUN_ERROR"
	TypeStepStarted  EventType = "STEP_STARTED"
	TypeStepFinished EventType = "STEP_FINISHED"

	TypeTextMessageStart   EventType = "TEXT_MESSAGE_START"
	TypeTextMessageContent EventType = "TEXT_MESSAGE_CONTENT"
	TypeTextMessageEnd     EventType = "TEXT_MESSAGE_END"
	TypeTextMessageChunk   EventType = "TEXT_MESSAGE_CHUNK"

	TypeThinkingStart              EventType = "THINKING_START"
	TypeThinkingEnd                EventType = "THINKING_END"
	TypeThinkingTextMessageStart   EventType = "THINKING_TEXT_MESSAGE_START"
	TypeThinkingTextMessageContent EventType = "THINKING_TEXT_MESSAGE_CONTENT"
	TypeThinkingTextMessageEnd     EventType = "THINKING_TEXT_MESSAGE_END"

	TypeToolCallStart  EventType = "TOOL_CALL_START"
	TypeToolCallArgs   EventType = "TOOL_CALL_ARGS"
	TypeToolCallEnd    EventType = "TOOL_CALL_END"
	TypeToolCallChunk  EventType = "TOOL_CALL_CHUNK"
	TypeToolCallResult EventType = "TOOL_CALL_RESULT"

	TypeStateSnapshot    EventType = "STATE_SNAPSHOT"
	TypeStateDelta       EventType = "STATE_DELTA"
	TypeMessagesSnapshot EventType = "MESSAGES_SNAPSHOT"

	TypeRaw    EventType = "RAW"
	TypeCustom EventType = "CUSTOM"
)

var allTypes = []EventType{
	TypeRunStarted, TypeRunFinished, TypeRunError, TypeStepStarted, TypeStepFinished,
	TypeTextMessageStart, TypeTextMessageContent, TypeTextMessageEnd, TypeTextMessageChunk,
	TypeThinkingStart, TypeThinkingEnd,
	TypeThinkingTextMessageStart, TypeThinkingTextMessageContent, TypeThinkingTextMessageEnd,
	TypeToolCallStart, TypeToolCallArgs, TypeToolCallEnd, TypeToolCallChunk, TypeToolCallResult,
	TypeStateSnapshot, TypeStateDelta, TypeMessagesSnapshot,
	TypeRaw, TypeCustom,
}

// AllTypes returns every event kind in catalogue order.
func AllTypes() []EventType {
	out := make([]EventType, len(allTypes))
	copy(out, allTypes)
	return out
}

// Valid reports whether t is one of the known kinds.
func (t EventType) Valid() bool {
	for _, k := range allTypes {
		if k == t {
			return true
		}
	}
	return false
}

// Event is implemented only by the event structs in this package.
type Event interface {
	EventType() EventType
	isEvent()
}

// PatchOp is one JSON-Patch-like operation inside a STATE_DELTA.
type PatchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// MessageSummary is one entry of a MESSAGES_SNAPSHOT.
type MessageSummary struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// --- Run lifecycle ---

type RunStarted struct {
	Type  EventType `json:"type"`
	RunID string    `json:"run_id"`
}

type RunFinished struct {
	Type   EventType      `json:"type"`
	RunID  string         `json:"run_id"`
	Result map[string]any `json:"result"`
}

type RunError struct {
	Type    EventType `json:"type"`
	Message string    `json:"error"`
}

// --- Steps ---

type StepStarted struct {
	Type   EventType `json:"type"`
	StepID string    `json:"stepId"`
}

type StepFinished struct {
	Type   EventType `json:"type"`
	StepID string    `json:"stepId"`
}

// --- Text messages ---

type TextMessageStart struct {
	Type      EventType `json:"type"`
	MessageID string    `json:"message_id"`
	Role      string    `json:"role"`
}

type TextMessageContent struct {
	Type      EventType `json:"type"`
	MessageID string    `json:"message_id"`
	Delta     string    `json:"delta"`
}

type TextMessageEnd struct {
	Type      EventType `json:"type"`
	MessageID string    `json:"message_id"`
}

// TextMessageChunk carries a whole message in one event instead of a
// start/content/end bracket.
type TextMessageChunk struct {
	Type      EventType `json:"type"`
	MessageID string    `json:"message_id"`
	Content   string    `json:"content"`
}

// --- Thinking ---

type ThinkingStart struct {
	Type EventType `json:"type"`
}

type ThinkingEnd struct {
	Type EventType `json:"type"`
}

type ThinkingTextMessageStart struct {
	Type EventType `json:"type"`
}

type ThinkingTextMessageContent struct {
	Type  EventType `json:"type"`
	Delta string    `json:"delta"`
}

type ThinkingTextMessageEnd struct {
	Type EventType `json:"type"`
}

// --- Tool calls ---

type ToolCallStart struct {
	Type         EventType `json:"type"`
	ToolCallID   string    `json:"toolCallId"`
	ToolCallName string    `json:"toolCallName"`
}

// ToolCallArgs carries one fragment of the JSON-encoded arguments.
type ToolCallArgs struct {
	Type       EventType `json:"type"`
	ToolCallID string    `json:"toolCallId"`
	Delta      string    `json:"delta"`
}

type ToolCallEnd struct {
	Type       EventType `json:"type"`
	ToolCallID string    `json:"toolCallId"`
}

// ToolCallChunk carries the complete arguments string in one event.
type ToolCallChunk struct {
	Type       EventType `json:"type"`
	ToolCallID string    `json:"toolCallId"`
	Arguments  string    `json:"arguments"`
}

type ToolCallResult struct {
	Type       EventType `json:"type"`
	ToolCallID string    `json:"toolCallId"`
	Result     string    `json:"result"`
}

// --- State ---

type StateSnapshot struct {
	Type     EventType      `json:"type"`
	Snapshot map[string]any `json:"snapshot"`
}

type StateDelta struct {
	Type  EventType `json:"type"`
	Delta []PatchOp `json:"delta"`
}

type MessagesSnapshot struct {
	Type     EventType        `json:"type"`
	Messages []MessageSummary `json:"messages"`
}

// --- Extension ---

type Raw struct {
	Type EventType `json:"type"`
	Data string    `json:"data"`
}

type Custom struct {
	Type      EventType      `json:"type"`
	EventName string         `json:"eventType"`
	Data      map[string]any `json:"data"`
}

func (RunStarted) EventType() EventType                 { return TypeRunStarted }
func (RunFinished) EventType() EventType                { return TypeRunFinished }
func (RunError) EventType() EventType                   { return TypeRunError }
func (StepStarted) EventType() EventType                { return TypeStepStarted }
func (StepFinished) EventType() EventType               { return TypeStepFinished }
func (TextMessageStart) EventType() EventType           { return TypeTextMessageStart }
func (TextMessageContent) EventType() EventType         { return TypeTextMessageContent }
func (TextMessageEnd) EventType() EventType             { return TypeTextMessageEnd }
func (TextMessageChunk) EventType() EventType           { return TypeTextMessageChunk }
func (ThinkingStart) EventType() EventType              { return TypeThinkingStart }
func (ThinkingEnd) EventType() EventType                { return TypeThinkingEnd }
func (ThinkingTextMessageStart) EventType() EventType   { return TypeThinkingTextMessageStart }
func (ThinkingTextMessageContent) EventType() EventType { return TypeThinkingTextMessageContent }
func (ThinkingTextMessageEnd) EventType() EventType     { return TypeThinkingTextMessageEnd }
func (ToolCallStart) EventType() EventType              { return TypeToolCallStart }
func (ToolCallArgs) EventType() EventType               { return TypeToolCallArgs }
func (ToolCallEnd) EventType() EventType                { return TypeToolCallEnd }
func (ToolCallChunk) EventType() EventType              { return TypeToolCallChunk }
func (ToolCallResult) EventType() EventType             { return TypeToolCallResult }
func (StateSnapshot) EventType() EventType              { return TypeStateSnapshot }
func (StateDelta) EventType() EventType                 { return TypeStateDelta }
func (MessagesSnapshot) EventType() EventType           { return TypeMessagesSnapshot }
func (Raw) EventType() EventType                        { return TypeRaw }
func (Custom) EventType() EventType                     { return TypeCustom }

func (RunStarted) isEvent()                 {}
func (RunFinished) isEvent()                {}
func (RunError) isEvent()                   {}
func (StepStarted) isEvent()                {}
func (StepFinished) isEvent()               {}
func (TextMessageStart) isEvent()           {}
func (TextMessageContent) isEvent()         {}
func (TextMessageEnd) isEvent()             {}
func (TextMessageChunk) isEvent()           {}
func (ThinkingStart) isEvent()              {}
func (ThinkingEnd) isEvent()                {}
func (ThinkingTextMessageStart) isEvent()   {}
func (ThinkingTextMessageContent) isEvent() {}
func (ThinkingTextMessageEnd) isEvent()     {}
func (ToolCallStart) isEvent()              {}
func (ToolCallArgs) isEvent()               {}
func (ToolCallEnd) isEvent()                {}
func (ToolCallChunk) isEvent()              {}
func (ToolCallResult) isEvent()             {}
func (StateSnapshot) isEvent()              {}
func (StateDelta) isEvent()                 {}
func (MessagesSnapshot) isEvent()           {}
func (Raw) isEvent()                        {}
func (Custom) isEvent()                     {}
