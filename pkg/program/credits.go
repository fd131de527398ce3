package program

// CreditsID is the id of the native credits program pre-seeded into every
// fresh process.
const CreditsID = "credits.aleo"

const creditsSource = `program credits.aleo;

function transfer_public:
    input r0 as address.public;
    input r1 as u64.public;
    output r2 as future.public;

function transfer_private:
    input r0 as credits.record;
    input r1 as address.private;
    input r2 as u64.private;
    output r3 as credits.record;
    output r4 as credits.record;

function transfer_private_to_public:
    input r0 as credits.record;
    input r1 as address.public;
    input r2 as u64.public;
    output r3 as credits.record;
    output r4 as future.public;

function transfer_public_to_private:
    input r0 as address.private;
    input r1 as u64.public;
    output r2 as credits.record;
    output r3 as future.public;

function join:
    input r0 as credits.record;
    input r1 as credits.record;
    output r2 as credits.record;

function split:
    input r0 as credits.record;
    input r1 as u64.private;
    output r2 as credits.record;
    output r3 as credits.record;

function fee_public:
    input r0 as u64.public;
    input r1 as u64.public;
    input r2 as field.public;
    output r3 as future.public;
`

// Credits returns a fresh copy of the native credits program. Each caller
// owns its copy; there is no shared mutable default.
func Credits() *Program {
	p, err := Parse(creditsSource)
	if err != nil {
		panic("embedded credits program: " + err.Error())
	}
	return p
}
