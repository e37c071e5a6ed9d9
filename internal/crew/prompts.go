package crew

import (
	"fmt"

	"github.com/lorenzotomasdiez/debatecrew/internal/openrouter"
)

func agentSystemPrompt(agent AgentSpec) string {
	return fmt.Sprintf("You are %s. %s\n\nYour personal goal is: %s", agent.Role, agent.Backstory, agent.Goal)
}

// taskMessages assembles the chat for one task: the agent's system prompt,
// the outputs of every prior task as context, then the task itself.
func taskMessages(agent AgentSpec, task TaskSpec, transcript *Transcript) []openrouter.Message {
	msgs := []openrouter.Message{
		{Role: "system", Content: agentSystemPrompt(agent)},
	}
	for _, prior := range transcript.Results {
		msgs = append(msgs, openrouter.Message{
			Role:    "user",
			Content: fmt.Sprintf("Output of task %q (%s):\n%s", prior.Task, prior.Agent, prior.Output),
		})
	}
	msgs = append(msgs, openrouter.Message{
		Role:    "user",
		Content: fmt.Sprintf("%s\n\nThis is the expected output for your answer: %s", task.Description, task.ExpectedOutput),
	})
	return msgs
}
