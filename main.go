package main

import "github.com/oguzhantogay/jira-cli/cmd"

func main() {
	cmd.Execute()
}
