/*
Package manifest registers data types into a registry from declarative HCL
manifests, the deployment-time alternative to registering each type from Go
code.

A manifest holds one data_type block per type:

	data_type "message" "vehicle.ahrs.Solution" {
	  id        = 1000
	  signature = "0x217f5c87d7ec951d"
	}

Loading is a start-up activity: any registration that does not succeed is an
unrecoverable configuration error, because the node must not run with an
incomplete type catalog.
*/
package manifest
