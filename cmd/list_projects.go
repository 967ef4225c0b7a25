package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var listProjectsCmd = &cobra.Command{
	Use:   "list-projects",
	Short: "List all available Jira projects",
	Args:  cobra.NoArgs,
	RunE:  runListProjects,
}

func runListProjects(cmd *cobra.Command, args []string) error {
	client, _ := newJiraClient()

	projects, err := client.Projects(cmd.Context())
	if err != nil || len(projects) == 0 {
		pterm.Error.Println("No projects found or an error occurred while fetching projects.")
		return nil
	}

	data := pterm.TableData{{"Key", "Name"}}
	for _, p := range projects {
		data = append(data, []string{p.Key, p.Name})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}
