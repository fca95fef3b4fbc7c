// Package complaint holds the Complaint aggregate and its status table:
//
//	OPEN -> IN_PROGRESS -> RESOLVED | REJECTED -> CLOSED
//
// with REOPENED as the side branch back into work. CLOSED is terminal.
package complaint
