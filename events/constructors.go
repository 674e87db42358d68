package events

import "cmp"

// Defaults applied by the constructors when an argument is left at its zero
// value.
const (
	DefaultRunID        = "run_001"
	DefaultStepID       = "step_001"
	DefaultMessageID    = "msg_001"
	DefaultRole         = "assistant"
	DefaultToolCallID   = "tool_001"
	DefaultToolCallName = "search"
	DefaultToolCallArgs = "{}"
	DefaultRunError     = "An error occurred"
	DefaultCustomName   = "custom_event"
)

// NewRunStarted opens a run.
func NewRunStarted(runID string) RunStarted {
	return RunStarted{Type: TypeRunStarted, RunID: cmp.Or(runID, DefaultRunID)}
}

// NewRunFinished closes a run. An empty result becomes {"status": "success"}.
func NewRunFinished(runID string, result map[string]any) RunFinished {
	if len(result) == 0 {
		result = map[string]any{"status": "success"}
	}
	return RunFinished{Type: TypeRunFinished, RunID: cmp.Or(runID, DefaultRunID), Result: result}
}

// NewRunError ends a run with a failure message.
func NewRunError(message string) RunError {
	return RunError{Type: TypeRunError, Message: cmp.Or(message, DefaultRunError)}
}

func NewStepStarted(stepID string) StepStarted {
	return StepStarted{Type: TypeStepStarted, StepID: cmp.Or(stepID, DefaultStepID)}
}

func NewStepFinished(stepID string) StepFinished {
	return StepFinished{Type: TypeStepFinished, StepID: cmp.Or(stepID, DefaultStepID)}
}

func NewTextMessageStart(messageID, role string) TextMessageStart {
	return TextMessageStart{
		Type:      TypeTextMessageStart,
		MessageID: cmp.Or(messageID, DefaultMessageID),
		Role:      cmp.Or(role, DefaultRole),
	}
}

func NewTextMessageContent(messageID, delta string) TextMessageContent {
	return TextMessageContent{Type: TypeTextMessageContent, MessageID: cmp.Or(messageID, DefaultMessageID), Delta: delta}
}

func NewTextMessageEnd(messageID string) TextMessageEnd {
	return TextMessageEnd{Type: TypeTextMessageEnd, MessageID: cmp.Or(messageID, DefaultMessageID)}
}

func NewTextMessageChunk(messageID, content string) TextMessageChunk {
	return TextMessageChunk{Type: TypeTextMessageChunk, MessageID: cmp.Or(messageID, DefaultMessageID), Content: content}
}

func NewThinkingStart() ThinkingStart { return ThinkingStart{Type: TypeThinkingStart} }

func NewThinkingEnd() ThinkingEnd { return ThinkingEnd{Type: TypeThinkingEnd} }

func NewThinkingTextMessageStart() ThinkingTextMessageStart {
	return ThinkingTextMessageStart{Type: TypeThinkingTextMessageStart}
}

func NewThinkingTextMessageContent(delta string) ThinkingTextMessageContent {
	return ThinkingTextMessageContent{Type: TypeThinkingTextMessageContent, Delta: delta}
}

func NewThinkingTextMessageEnd() ThinkingTextMessageEnd {
	return ThinkingTextMessageEnd{Type: TypeThinkingTextMessageEnd}
}

func NewToolCallStart(toolCallID, toolCallName string) ToolCallStart {
	return ToolCallStart{
		Type:         TypeToolCallStart,
		ToolCallID:   cmp.Or(toolCallID, DefaultToolCallID),
		ToolCallName: cmp.Or(toolCallName, DefaultToolCallName),
	}
}

// NewToolCallArgs emits one fragment of the arguments JSON. Fragments are not
// required to be valid JSON on their own.
func NewToolCallArgs(toolCallID, delta string) ToolCallArgs {
	return ToolCallArgs{Type: TypeToolCallArgs, ToolCallID: cmp.Or(toolCallID, DefaultToolCallID), Delta: delta}
}

func NewToolCallEnd(toolCallID string) ToolCallEnd {
	return ToolCallEnd{Type: TypeToolCallEnd, ToolCallID: cmp.Or(toolCallID, DefaultToolCallID)}
}

func NewToolCallChunk(toolCallID, arguments string) ToolCallChunk {
	return ToolCallChunk{
		Type:       TypeToolCallChunk,
		ToolCallID: cmp.Or(toolCallID, DefaultToolCallID),
		Arguments:  cmp.Or(arguments, DefaultToolCallArgs),
	}
}

func NewToolCallResult(toolCallID, result string) ToolCallResult {
	return ToolCallResult{Type: TypeToolCallResult, ToolCallID: cmp.Or(toolCallID, DefaultToolCallID), Result: result}
}

// NewStateSnapshot replaces the whole shared state. nil becomes {}.
func NewStateSnapshot(snapshot map[string]any) StateSnapshot {
	if snapshot == nil {
		snapshot = map[string]any{}
	}
	return StateSnapshot{Type: TypeStateSnapshot, Snapshot: snapshot}
}

// NewStateDelta applies ops to the shared state in order. nil becomes [].
func NewStateDelta(ops ...PatchOp) StateDelta {
	if ops == nil {
		ops = []PatchOp{}
	}
	return StateDelta{Type: TypeStateDelta, Delta: ops}
}

// NewMessagesSnapshot carries the message history. nil becomes [].
func NewMessagesSnapshot(messages ...MessageSummary) MessagesSnapshot {
	if messages == nil {
		messages = []MessageSummary{}
	}
	return MessagesSnapshot{Type: TypeMessagesSnapshot, Messages: messages}
}

func NewRaw(data string) Raw { return Raw{Type: TypeRaw, Data: data} }

// NewCustom wraps an application-defined event. nil data becomes {}.
func NewCustom(eventName string, data map[string]any) Custom {
	if data == nil {
		data = map[string]any{}
	}
	return Custom{Type: TypeCustom, EventName: cmp.Or(eventName, DefaultCustomName), Data: data}
}

// Replace builds a "replace" patch operation.
func Replace(path string, value any) PatchOp { return PatchOp{Op: "replace", Path: path, Value: value} }

// Add builds an "add" patch operation.
func Add(path string, value any) PatchOp { return PatchOp{Op: "add", Path: path, Value: value} }

// Remove builds a "remove" patch operation.
func Remove(path string) PatchOp { return PatchOp{Op: "remove", Path: path} }
