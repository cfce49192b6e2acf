// Package preview drives an interactive terminal session over a populated
// registry: pick a story, answer one prompt per argument, and print the
// rendered node. Prompting is abstracted behind PromptDriver so the flow can
// be tested without a real terminal.
package preview
