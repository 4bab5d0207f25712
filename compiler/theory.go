package compiler

const Theory = `
# Target
The Analytical Engine reads a deck of cards. Number cards put constants into
store columns. An operation card selects the mill operation, two load cards
move columns onto the ingress axes and run it, and a store card moves the
egress axis back into a column. Division has two egresses: the primed one holds
the quotient and the plain one the remainder. The run-up lever rises when a
division divides by zero or when an addition or subtraction changes sign. A
combinatorial card skips a number of cards forward or backward, always or only
when the lever is raised. Every card counts as one unit of skip distance.

# Storage
Columns 0 to 999 are handed out lowest first. A variable keeps its column for
the whole compilation. Temps are taken right before use and handed back when
the routine that took them returns. Temps of an if or while condition stay
taken until the guarded block is compiled, because the condition runs again
on every pass of an enclosing loop and must not clobber block variables.

# Expressions
There is no move card, so copying a column adds zero to it. Comparisons are
built from the lever: x == y divides x by x - y, !x divides x by itself, and
a two-way choice is

	CF?2 / N out otherwise / CF+1 / N out onLever

x > y reads the sign-change lever of x - y and is unreliable for x == y and
for negative x. x < y is y > x. and / or are (x * y) == 1 and !((x + y) == 0),
meaningful only for 0 and 1.

# Control flow
if c:    [c] N d D / L d L c  CF?n  [block: n]
while c: [c: k] N d D / L d L c  CF?(n+1)  [body: n]  CB+(n+k+6)

D is the configured nonzero dividend. Dividing it by a zero condition raises
the lever and skips the block. The backward skip of a loop lands on the first
card of the condition, so the condition is evaluated again on every pass.
`
