// Package scraper provides HTTP fetching and HTML parsing for ESPN
// basketball pages. It discovers the games listed on a date's scoreboard
// and extracts each game's play-by-play table into raw rows plus the two
// team identities, leaving normalization to the normalize package.
package scraper
