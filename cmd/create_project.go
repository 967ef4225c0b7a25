package cmd

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/oguzhantogay/jira-cli/internal/jira"
)

var (
	createProjectName    string
	createProjectKey     string
	createProjectTypeKey string
	createProjectLead    string
)

var createProjectCmd = &cobra.Command{
	Use:   "create-project",
	Short: "Create a new project in Jira",
	Args:  cobra.NoArgs,
	RunE:  runCreateProject,
}

func init() {
	createProjectCmd.Flags().StringVar(&createProjectName, "name", "", "The name of the project")
	createProjectCmd.Flags().StringVar(&createProjectKey, "key", "", "The project key")
	createProjectCmd.Flags().StringVar(&createProjectTypeKey, "projectTypeKey", "", "The type of the project (e.g., software, business)")
	createProjectCmd.Flags().StringVar(&createProjectLead, "lead", "", "The username of the project lead")
}

func runCreateProject(cmd *cobra.Command, args []string) error {
	client, _ := newJiraClient()

	if err := askIfEmpty(&createProjectName, "Project name", ""); err != nil {
		return err
	}
	if err := askIfEmpty(&createProjectKey, "Project key", "PROJ"); err != nil {
		return err
	}
	if err := askIfEmpty(&createProjectTypeKey, "Project type (e.g., software, business)", "software"); err != nil {
		return err
	}
	if err := askIfEmpty(&createProjectLead, "Project lead username", ""); err != nil {
		return err
	}

	_, err := client.CreateProject(cmd.Context(), jira.NewProject{
		Name:    createProjectName,
		Key:     createProjectKey,
		TypeKey: createProjectTypeKey,
		Lead:    createProjectLead,
	})
	if err != nil {
		pterm.Error.Printfln("Failed to create project '%s'.", createProjectName)
		os.Exit(1)
	}

	pterm.Success.Printfln("Project '%s' created successfully with key '%s'.", createProjectName, createProjectKey)
	return nil
}
