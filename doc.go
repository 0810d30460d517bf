// Package toolloop implements the tool-calling orchestration loop for
// chat-completions style endpoints: a closed tool catalog with derived
// parameter schemas, argument decoding and validation, sequential or
// parallel tool dispatch with per-call failure isolation, and the
// conversation state machine that folds tool results back into the
// exchange until the model produces a plain answer.
//
// Per-tool failures (unknown name, malformed arguments, execution errors,
// panics) never abort a run; they are encoded as tool-role messages so the
// model can see the problem and rephrase. Only configuration and endpoint
// transport failures terminate a run.
package toolloop
