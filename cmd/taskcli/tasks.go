package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"taskdeck/pkg/client"
)

var (
	listStatusFlag  string
	addDescFlag     string
	updateTitleFlag string
	updateDescFlag  string
	updateStatus    string
)

func init() {
	listCmd.Flags().StringVar(&listStatusFlag, "status", "all", "filter by status: all, pending or completed")
	addCmd.Flags().StringVar(&addDescFlag, "desc", "", "task description")
	updateCmd.Flags().StringVar(&updateTitleFlag, "title", "", "new title")
	updateCmd.Flags().StringVar(&updateDescFlag, "desc", "", "new description")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "new status: pending or completed")

	rootCmd.AddCommand(listCmd, addCmd, updateCmd, toggleCmd, rmCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your tasks, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		tasks, err := c.ListTasks(cmd.Context())
		if err != nil {
			return err
		}

		// Filtering happens locally on the fetched list.
		tasks = client.FilterTasks(tasks, client.StatusFilter(listStatusFlag))
		printTasks(cmd, tasks)
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		task, err := c.CreateTask(cmd.Context(), args[0], addDescFlag)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s: %s\n", task.ID, task.Title)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task's title, description or status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		var update client.TaskUpdate
		if cmd.Flags().Changed("title") {
			update.Title = &updateTitleFlag
		}
		if cmd.Flags().Changed("desc") {
			update.Description = &updateDescFlag
		}
		if cmd.Flags().Changed("status") {
			update.Status = &updateStatus
		}
		if update.Title == nil && update.Description == nil && update.Status == nil {
			return fmt.Errorf("nothing to update: pass --title, --desc or --status")
		}

		task, err := c.UpdateTask(cmd.Context(), args[0], update)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s [%s]\n", task.ID, task.Title, task.Status)
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a task between pending and completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		task, err := c.ToggleTask(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", task.Title, task.Status)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		message, err := c.DeleteTask(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), message)
		return nil
	},
}

func printTasks(cmd *cobra.Command, tasks []client.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tasks")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tDESCRIPTION")
	for _, task := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", task.ID, task.Status, task.Title, task.Description)
	}
	_ = w.Flush()
}
