// Package spawn is the single boundary between the launcher and child
// processes. Every external collaborator (the provisioning command, the
// package installer, the application interpreter) is invoked through the
// Runner interface, so tests can substitute a scripted fake and assert on
// call counts without ever forking a real process.
package spawn
