// Package services implements the driving ports on top of the driven ones.
//
// Coordinator owns every filesystem write: UI surfaces send it commands and
// read results from its event channel.
package services
