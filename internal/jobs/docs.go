// Package jobs holds the background jobs of the order service. Each job owns
// its cron scheduler and is started and stopped by the subscriber command.
package jobs
