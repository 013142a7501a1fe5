// Grin is a line labeled interpreter.
//
// A GRIN program is a sequence of lines, one statement per line, ended by a line
// holding only a "." (or the end of input). Any line may start with a label and
// a colon:
//
//	        LET N 3
//	LOOP:   PRINT N
//	        SUB N 1
//	        GOTO LOOP IF N > 0
//	        END
//	.
//
// Values are integers, floats, and strings. Variables spring into being on first
// assignment, and reading one that was never assigned is an error.
//
//	LET name value      assign a literal or another variable's value
//	PRINT value         print a value on its own line
//	INNUM name          read a line of input as a number
//	INSTR name          read a line of input as a string
//	ADD name value      name = name + value; likewise SUB, MULT, and DIV
//	GOTO target         continue running at target
//	GOSUB target        like GOTO, remembering where to RETURN to
//	RETURN              continue after the most recent unreturned GOSUB
//	END                 stop running
//
// Integer division floors; mixing an integer and a float makes a float.
//
// A GOTO or GOSUB target is either a label, given as a string, a bare word, or
// a variable holding a string; or a number, giving an offset from the current
// line: "GOTO 2" skips the next line, "GOTO -1" repeats the prior one. A jump
// may land one past the last line, ending the program. Either may be guarded
// by a condition, taken only when it holds:
//
//	GOTO target IF left op right
//
// where op is one of < <= > >= = <>. Numbers compare with numbers and strings
// with strings; mixing the two is an error.
//
// Any run time error halts the program, reporting its line. When reading a
// program from standard input, the lines after the "." feed INNUM and INSTR;
// given a program file, they read all of standard input instead.
package main
