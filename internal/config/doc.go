// Package config loads the two kinds of settings the API needs: process
// settings from POI_* environment variables, and MySQL credentials from the
// [client] section of a .my.cnf option file shared with the crawlers.
package config
