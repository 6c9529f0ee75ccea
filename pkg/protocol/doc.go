// Package protocol implements the line protocol spoken by the savedata binary.
//
// A caller runs `savedata <action>` and reads exactly one JSON envelope from
// stdout:
//
//	savedata save < doc.json   ->  {"success":true}
//	savedata load              ->  {"success":true,"data":{...}}
//	savedata frobnicate        ->  {"success":false,"error":"Invalid action"}
//
// The adapter never writes anything else to its output. Diagnostics go to the
// logger, which writes to stderr and the log file.
package protocol
