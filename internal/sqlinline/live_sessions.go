package sqlinline

// QInsertLiveSessionRegistration is an insert-or-ignore keyed on email.
const QInsertLiveSessionRegistration = `--sql b363b2d9-0f7b-4fd9-b7be-8490789f79b1
insert into live_session_registrations (email, registeredAt)
values (?, ?)
on conflict (email) do nothing;
`

const QListLiveSessionEmails = `--sql 81c0295a-eedf-4818-a458-304171ebffad
select email
from live_session_registrations
order by id;
`
