package trap

// PriorityOrder is the order in which simultaneously pending interrupts are
// taken: higher privilege first, and external before software before timer
// within a level.
var PriorityOrder = [...]Interrupt{
	MachineExternal, MachineSoftware, MachineTimer,
	SupervisorExternal, SupervisorSoftware, SupervisorTimer,
	UserExternal, UserSoftware, UserTimer,
}

// HighestPriorityInterrupt picks the interrupt to take from a mask of
// interrupts that are pending, locally enabled and globally enabled. The
// second result is false when none of the standard interrupts is set; other
// bits (platform or custom interrupts) are ignored.
func HighestPriorityInterrupt[X Register](pendingAndEnabled X) (Interrupt, bool) {
	if pendingAndEnabled == 0 {
		return 0, false
	}
	for _, i := range PriorityOrder {
		if bitSet(pendingAndEnabled, uint(i)) {
			return i, true
		}
	}
	return 0, false
}
