package handler

type ContextKey string

var (
	AgentConfigCtx ContextKey = "agentConfig"
)
