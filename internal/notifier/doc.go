// Package notifier posts finished-game summaries to external channels.
// Implementations receive fully-normalized games and are free to format
// them per channel; a dry-run implementation is provided for local use.
package notifier
