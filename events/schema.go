package events

import (
	"github.com/invopop/jsonschema"
)

// prototype returns a default-valued event of kind t.
func prototype(t EventType) Event {
	switch t {
	case TypeRunStarted:
		return NewRunStarted("")
	case TypeRunFinished:
		return NewRunFinished("", nil)
	case TypeRunError:
		return NewRunError("")
	case TypeStepStarted:
		return NewStepStarted("")
	case TypeStepFinished:
		return NewStepFinished("")
	case TypeTextMessageStart:
		return NewTextMessageStart("", "")
	case TypeTextMessageContent:
		return NewTextMessageContent("", "")
	case TypeTextMessageEnd:
		return NewTextMessageEnd("")
	case TypeTextMessageChunk:
		return NewTextMessageChunk("", "")
	case TypeThinkingStart:
		return NewThinkingStart()
	case TypeThinkingEnd:
		return NewThinkingEnd()
	case TypeThinkingTextMessageStart:
		return NewThinkingTextMessageStart()
	case TypeThinkingTextMessageContent:
		return NewThinkingTextMessageContent("")
	case TypeThinkingTextMessageEnd:
		return NewThinkingTextMessageEnd()
	case TypeToolCallStart:
		return NewToolCallStart("", "")
	case TypeToolCallArgs:
		return NewToolCallArgs("", "")
	case TypeToolCallEnd:
		return NewToolCallEnd("")
	case TypeToolCallChunk:
		return NewToolCallChunk("", "")
	case TypeToolCallResult:
		return NewToolCallResult("", "")
	case TypeStateSnapshot:
		return NewStateSnapshot(nil)
	case TypeStateDelta:
		return NewStateDelta()
	case TypeMessagesSnapshot:
		return NewMessagesSnapshot()
	case TypeRaw:
		return NewRaw("")
	case TypeCustom:
		return NewCustom("", nil)
	}
	return nil
}

// Schema reflects the JSON Schema of one event kind. The "type" property is
// pinned to the kind's discriminator. Returns nil for unknown kinds.
func Schema(t EventType) *jsonschema.Schema {
	p := prototype(t)
	if p == nil {
		return nil
	}
	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(p)
	schema.Title = string(t)
	if prop, ok := schema.Properties.Get("type"); ok {
		prop.Const = string(t)
	}
	return schema
}

// Schemas returns the schema of every kind, keyed by discriminator.
func Schemas() map[EventType]*jsonschema.Schema {
	out := make(map[EventType]*jsonschema.Schema, len(allTypes))
	for _, t := range allTypes {
		out[t] = Schema(t)
	}
	return out
}
