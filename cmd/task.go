package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maiquockhanh06/Timeflow-app/internal/constants"
	"github.com/maiquockhanh06/Timeflow-app/internal/dates"
	apperrors "github.com/maiquockhanh06/Timeflow-app/internal/errors"
	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
	"github.com/maiquockhanh06/Timeflow-app/internal/services"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Create a pending task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks ordered by due date and time",
	RunE:  runTaskList,
}

var taskStatusCmd = &cobra.Command{
	Use:   "status [task-id] [pending|in_progress|completed]",
	Short: "Change a task's status",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskStatus,
}

var taskTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show open tasks due today and in the coming week",
	RunE:  runTaskToday,
}

func init() {
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskStatusCmd)
	taskCmd.AddCommand(taskTodayCmd)

	taskAddCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	taskAddCmd.Flags().String("time", "", "Due time (HH:MM)")
	taskAddCmd.Flags().String("category", "", "Category id")
	taskAddCmd.Flags().String("description", "", "Task description")
	_ = taskAddCmd.MarkFlagRequired("due")

	taskListCmd.Flags().String("status", "all", "Filter: all, pending, in_progress, completed")

	rootCmd.AddCommand(taskCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	rawDue, _ := cmd.Flags().GetString("due")
	rawTime, _ := cmd.Flags().GetString("time")
	categoryID, _ := cmd.Flags().GetString("category")
	description, _ := cmd.Flags().GetString("description")

	due, err := dates.ParseDate(rawDue)
	if err != nil {
		return apperrors.Validation("--due must be YYYY-MM-DD")
	}
	dueTime, err := dates.ParseClockTime(rawTime)
	if err != nil {
		return apperrors.Validation("--time must be HH:MM")
	}

	in := services.CreateTaskInput{
		Title:       args[0],
		Description: description,
		DueDate:     due,
		DueTime:     dueTime,
	}
	if categoryID != "" {
		in.CategoryID = &categoryID
	}

	return withApp(cmd.Context(), func(a *app) error {
		task, err := a.services.Tasks.CreateTask(cmd.Context(), a.cfg.OwnerID, in)
		if err != nil {
			return err
		}
		fmt.Printf("Created task %s due %s\n", task.ID, formatDue(task.DueDate, task.DueTime))
		return nil
	})
}

func runTaskList(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("status")
	filter, ok := constants.ParseStatusFilter(raw)
	if !ok {
		return apperrors.Validation("unknown status filter %q", raw)
	}

	return withApp(cmd.Context(), func(a *app) error {
		tasks, err := a.services.Tasks.ListByFilter(cmd.Context(), a.cfg.OwnerID, filter)
		if err != nil {
			return err
		}
		counts, err := a.services.Tasks.CountByStatus(cmd.Context(), a.cfg.OwnerID)
		if err != nil {
			return err
		}
		printTasks(tasks)
		fmt.Println()
		printCounts(counts)
		return nil
	})
}

func runTaskStatus(cmd *cobra.Command, args []string) error {
	status, ok := constants.ParseTaskStatus(args[1])
	if !ok {
		return apperrors.Validation("unknown status %q", args[1])
	}

	return withApp(cmd.Context(), func(a *app) error {
		task, err := a.services.Tasks.SetStatus(cmd.Context(), a.cfg.OwnerID, args[0], status)
		if err != nil {
			return err
		}
		fmt.Printf("Task %s is now %s\n", task.ID, task.Status)
		if task.CompletionDate != nil {
			fmt.Printf("Completed on %s\n", task.CompletionDate)
		}
		return nil
	})
}

func runTaskToday(cmd *cobra.Command, args []string) error {
	return withApp(cmd.Context(), func(a *app) error {
		agenda, err := a.services.Tasks.Agenda(cmd.Context(), a.cfg.OwnerID)
		if err != nil {
			return err
		}

		fmt.Printf("Today (%s):\n", agenda.Date)
		printTasks(agenda.Today)
		fmt.Println("\nUpcoming:")
		printTasks(agenda.Upcoming)
		fmt.Println()
		printCounts(agenda.Counts)
		return nil
	})
}

func printTasks(tasks []model.TaskView) {
	if len(tasks) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, t := range tasks {
		line := fmt.Sprintf("  %s  %-16s  %-11s  %s", t.ID, formatDue(t.DueDate, t.DueTime), t.Status, t.Title)
		if t.CategoryName != "" {
			line += " [" + t.CategoryName + "]"
		}
		fmt.Println(line)
	}
}

func printCounts(counts map[constants.TaskStatus]int64) {
	for _, s := range constants.TaskStatuses {
		fmt.Printf("  %-12s %d\n", string(s)+":", counts[s])
	}
}

func formatDue(d dates.Date, t dates.ClockTime) string {
	if !t.IsSet() {
		return d.String()
	}
	return d.String() + " " + t.String()
}
