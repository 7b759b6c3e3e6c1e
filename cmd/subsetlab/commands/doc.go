// Package commands defines the subsetlab CLI, a grading and authoring tool for subset
// construction lesson files.
//
// Commands
//
//   - check    Validate the table stored in a lesson file
//   - closure  Print the epsilon closure of a set of states
//   - step     Print the states reached from a set on one symbol
//   - solve    Print the complete conversion table
//
// Every command reads the lesson from --file. The root command builds the logger before
// any subcommand runs.
package commands
