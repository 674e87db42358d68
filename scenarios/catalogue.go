package scenarios

import "agui_mock/events"

func buildCatalogue() []Scenario {
	return []Scenario{
		{
			Name:        "simple_text",
			Description: "Simple text message",
			seq: []events.Event{
				events.NewRunStarted("run_001"),
				events.NewTextMessageStart("msg_001", "assistant"),
				events.NewTextMessageContent("msg_001", "Hello, "),
				events.NewTextMessageContent("msg_001", "world!"),
				events.NewTextMessageEnd("msg_001"),
				events.NewRunFinished("run_001", nil),
			},
		},
		{
			Name:        "with_thinking",
			Description: "With thinking process",
			seq: []events.Event{
				events.NewRunStarted("run_002"),
				events.NewThinkingStart(),
				events.NewThinkingTextMessageStart(),
				events.NewThinkingTextMessageContent("Let me think..."),
				events.NewThinkingTextMessageEnd(),
				events.NewThinkingEnd(),
				events.NewTextMessageStart("msg_002", "assistant"),
				events.NewTextMessageContent("msg_002", "Based on my analysis, "),
				events.NewTextMessageContent("msg_002", "the answer is 42."),
				events.NewTextMessageEnd("msg_002"),
				events.NewRunFinished("run_002", nil),
			},
		},
		{
			Name:        "with_tool_call",
			Description: "With tool call",
			seq: []events.Event{
				events.NewRunStarted("run_003"),
				events.NewTextMessageStart("msg_003", "assistant"),
				events.NewTextMessageContent("msg_003", "Let me search for that."),
				events.NewTextMessageEnd("msg_003"),
				events.NewToolCallStart("tool_001", "web_search"),
				events.NewToolCallArgs("tool_001", `{"query": "`),
				events.NewToolCallArgs("tool_001", `AG-UI protocol"}`),
				events.NewToolCallEnd("tool_001"),
				events.NewToolCallResult("tool_001", "Found 10 results"),
				events.NewTextMessageStart("msg_004", "assistant"),
				events.NewTextMessageContent("msg_004", "I found some information."),
				events.NewTextMessageEnd("msg_004"),
				events.NewRunFinished("run_003", nil),
			},
		},
		{
			Name:        "with_state",
			Description: "With state management",
			seq: []events.Event{
				events.NewRunStarted("run_004"),
				events.NewStateSnapshot(map[string]any{"counter": 0, "status": "started"}),
				events.NewTextMessageStart("msg_005", "assistant"),
				events.NewTextMessageContent("msg_005", "Processing..."),
				events.NewTextMessageEnd("msg_005"),
				events.NewStateDelta(
					events.Replace("/counter", 1),
					events.Replace("/status", "processing"),
				),
				events.NewTextMessageStart("msg_006", "assistant"),
				events.NewTextMessageContent("msg_006", "Done!"),
				events.NewTextMessageEnd("msg_006"),
				events.NewStateDelta(
					events.Replace("/counter", 2),
					events.Replace("/status", "completed"),
				),
				events.NewRunFinished("run_004", nil),
			},
		},
		{
			// Fails mid-message: no TEXT_MESSAGE_END and no RUN_FINISHED.
			Name:        "error",
			Description: "Error scenario",
			seq: []events.Event{
				events.NewRunStarted("run_005"),
				events.NewTextMessageStart("msg_007", "assistant"),
				events.NewTextMessageContent("msg_007", "Starting task..."),
				events.NewRunError("Something went wrong!"),
			},
		},
		{
			Name:        "all_events",
			Description: "All event types",
			seq:         allEvents(),
		},
	}
}

// allEvents covers every kind except RUN_ERROR, which would end the run
// before RUN_FINISHED.
func allEvents() []events.Event {
	seq := []events.Event{
		events.NewRunStarted("run_all"),
		events.NewStepStarted("step_001"),

		events.NewThinkingStart(),
		events.NewThinkingTextMessageStart(),
		events.NewThinkingTextMessageContent("Analyzing..."),
		events.NewThinkingTextMessageEnd(),
		events.NewThinkingEnd(),

		events.NewTextMessageStart("msg_all", "assistant"),
		events.NewTextMessageContent("msg_all", "Hello! "),
		events.NewTextMessageContent("msg_all", "This is a test."),
		events.NewTextMessageEnd("msg_all"),
		events.NewTextMessageChunk("msg_chunk", "This message arrived in one chunk."),

		events.NewToolCallStart("tool_all", "calculator"),
		events.NewToolCallArgs("tool_all", `{"operation": "add", "a": 1, "b": 2}`),
		events.NewToolCallEnd("tool_all"),
		events.NewToolCallResult("tool_all", "3"),
		events.NewToolCallChunk("tool_chunk", `{"operation": "multiply", "a": 3, "b": 4}`),
		events.NewToolCallResult("tool_chunk", "12"),

		events.NewStateSnapshot(map[string]any{"test": true}),
		events.NewStateDelta(events.Add("/count", 1)),
		events.NewMessagesSnapshot(events.MessageSummary{
			ID:      "msg_all",
			Role:    "assistant",
			Content: "Hello! This is a test.",
		}),

		events.NewStepFinished("step_001"),

		events.NewCustom("test_event", map[string]any{"key": "value"}),
		events.NewRaw("raw data"),
	}
	return append(seq, events.NewRunFinished("run_all", map[string]any{
		"status":       "success",
		"events_count": len(seq) + 1,
	}))
}
