// Package norma implements the program parser and instruction set of the
// Norma machine.
//
// The Norma machine has eight registers (A-H) holding non-negative integers
// and three instructions: increment a register, decrement a register (never
// below zero), and branch on whether a register is zero. Every instruction
// names the label of the instruction to run next. Jumping to a label that is
// not in the program halts the machine.
//
// Programs are plain text, one labelled instruction per line:
//
//	0: faca add A va_para 1
//	1: faca sub B va_para 2
//	2: se zero B entao va_para 3 senao va_para 0
//
// A '#' starts a comment that runs to the end of the line.
package norma
