package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders a single Instruction in a parenthesized, human-readable
// notation. The wire encoding itself is left to the downstream backend;
// this exists so tests and a CLI debug flag have a comparable form.
func String(instr Instruction) string {
	switch v := instr.(type) {
	case PushInt:
		return "(PushInt " + strconv.FormatInt(v.Value, 10) + ")"
	case PushFloat:
		return "(PushFloat " + strconv.FormatFloat(v.Value, 'g', -1, 64) + ")"
	case PushSymbol:
		return "(PushSymbol :" + v.Name + ")"
	case PushString:
		return fmt.Sprintf("(PushString %q %d)", v.Value, v.Len)
	case PushTrue:
		return "(PushTrue)"
	case PushFalse:
		return "(PushFalse)"
	case PushNil:
		return "(PushNil)"
	case PushSelf:
		return "(PushSelf)"
	case PushObjectClass:
		return "(PushObjectClass)"
	case PushRange:
		return fmt.Sprintf("(PushRange exclude_end=%t)", v.ExcludeEnd)
	case PushArg:
		return fmt.Sprintf("(PushArg %d)", v.Index)
	case PushArgs:
		return "(PushArgs)"
	case PushArgc:
		return fmt.Sprintf("(PushArgc %d)", v.Count)
	case CreateArray:
		return fmt.Sprintf("(CreateArray %d)", v.Count)
	case CreateHash:
		return fmt.Sprintf("(CreateHash %d)", v.Count)
	case Dup:
		return "(Dup)"
	case DupRel:
		return fmt.Sprintf("(DupRel %d)", v.Depth)
	case Swap:
		return "(Swap)"
	case Pop:
		return "(Pop)"
	case VariableGet:
		return fmt.Sprintf("(VariableGet %q)", v.Name)
	case VariableSet:
		return fmt.Sprintf("(VariableSet %q local_only=%t)", v.Name, v.LocalOnly)
	case InstanceVariableGet:
		return fmt.Sprintf("(InstanceVariableGet %q)", v.Name)
	case InstanceVariableSet:
		return fmt.Sprintf("(InstanceVariableSet %q)", v.Name)
	case GlobalVariableGet:
		return fmt.Sprintf("(GlobalVariableGet %q)", v.Name)
	case GlobalVariableSet:
		return fmt.Sprintf("(GlobalVariableSet %q)", v.Name)
	case ConstFind:
		return fmt.Sprintf("(ConstFind %q)", v.Name)
	case ConstSet:
		return fmt.Sprintf("(ConstSet %q)", v.Name)
	case Send:
		return fmt.Sprintf("(Send %q self=%t block=%t)", v.Message, v.ReceiverIsSelf, v.WithBlock)
	case Yield:
		return "(Yield)"
	case If:
		return "(If)"
	case Else:
		return fmt.Sprintf("(Else %s)", v.Tag)
	case End:
		return fmt.Sprintf("(End %s)", v.Tag)
	case DefineMethod:
		return fmt.Sprintf("(DefineMethod %q %d)", v.Name, v.Arity)
	case DefineBlock:
		return fmt.Sprintf("(DefineBlock %d)", v.Arity)
	case DefineClass:
		return fmt.Sprintf("(DefineClass %q)", v.Name)
	case PushCurrentException:
		return "(PushCurrentException)"
	case PopException:
		return "(PopException)"
	case RaiseCurrent:
		return "(RaiseCurrent)"
	case BeginRescue:
		return "(BeginRescue)"
	default:
		return fmt.Sprintf("(UnknownInstruction %T)", v)
	}
}

// Sexpr renders a whole instruction stream, one instruction per line, in
// the same notation String uses. Tests compare lowering output against
// golden fixtures with this.
func Sexpr(stream []Instruction) string {
	var sb strings.Builder
	for i, instr := range stream {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(String(instr))
	}
	return sb.String()
}
