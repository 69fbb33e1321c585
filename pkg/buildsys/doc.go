// Package buildsys turns parsed build description records into validated
// compile jobs and runs the system compiler once per job.
//
// Every declared program is validated and planned before the first compiler
// process is spawned, which means a broken record anywhere in the file stops
// the run without building anything. The jobs themselves always run in
// declaration order.
package buildsys
