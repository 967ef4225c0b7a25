package cmd

import "github.com/charmbracelet/huh"

// askIfEmpty prompts interactively for a value when the corresponding
// option was not provided on the command line.
func askIfEmpty(value *string, title, placeholder string) error {
	if *value != "" {
		return nil
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Run()
}

// ask always prompts, pre-filling the given value.
func ask(value *string, title string) error {
	return huh.NewInput().
		Title(title).
		Value(value).
		Run()
}
