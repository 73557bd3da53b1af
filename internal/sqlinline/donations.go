package sqlinline

const QInsertDonation = `--sql 53b0156a-b475-48cb-9f1c-fa713ce11129
insert into donations (name, email, amount, message, createdAt)
values (?, ?, ?, ?, ?)
returning id;
`

const QListDonations = `--sql 7f881047-69fe-4002-b240-0524ae4e1d57
select id, name, email, amount, message, createdAt
from donations
order by id;
`
