// Command reg2ps converts Windows registry export (.reg) files into
// PowerShell scripts.
package main

func main() {
	execute()
}
