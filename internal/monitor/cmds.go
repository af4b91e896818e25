package monitor

import "github.com/beevik/cmd"

type command struct {
	name  string
	usage string
	brief string
	data  func(*Monitor, cmd.Selection) error
}

// commands are listed by help in this order.
var commands []command

var cmds *cmd.Tree

func init() {
	commands = []command{
		{"help", "help [<command>]", "Display help for a command", (*Monitor).cmdHelp},
		{"step", "step [<count>]", "Execute the next instruction(s)", (*Monitor).cmdStep},
		{"run", "run [<count>]", "Run until the CPU halts, the count is reached or Ctrl-C", (*Monitor).cmdRun},
		{"registers", "registers", "Display the CPU registers", (*Monitor).cmdRegisters},
		{"memory", "memory [<address>] [<bytes>]", "Dump memory, continuing where the last dump stopped", (*Monitor).cmdMemory},
		{"disassemble", "disassemble [<address>] [<lines>]", "Disassemble code, continuing where the last listing stopped", (*Monitor).cmdDisassemble},
		{"reset", "reset", "Reset the machine", (*Monitor).cmdReset},
		{"opcode", "opcode <mnemonic>", "List the opcodes of an instruction (any unique prefix)", (*Monitor).cmdOpcode},
		{"quit", "quit", "Quit the monitor", (*Monitor).cmdQuit},
	}

	cmds = cmd.NewTree(cmd.TreeDescriptor{Name: "m6502"})
	for _, c := range commands {
		cmds.AddCommand(cmd.CommandDescriptor{
			Name:  c.name,
			Brief: c.brief,
			Usage: c.usage,
			Data:  c.data,
		})
	}
}
